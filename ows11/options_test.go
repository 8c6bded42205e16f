package ows11

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEncodeOptions(t *testing.T) {
	require := require.New(t)

	t.Setenv("OWS_SCHEMAS", "http://schemas.example.com")
	path := filepath.Join(t.TempDir(), "encoding.yaml")
	require.NoError(os.WriteFile(path, []byte(`
indent: "  "
xmlDeclaration: true
namespaces:
  wfs: http://www.opengis.net/wfs/2.0
schemaLocations:
  http://www.opengis.net/ows/1.1: ${OWS_SCHEMAS}/ows/1.1.0/owsAll.xsd
`), 0o600))

	opts, err := LoadEncodeOptions(path)
	require.NoError(err)
	require.Equal(EncodeOptions{
		Indent:          "  ",
		XMLDeclaration:  true,
		Namespaces:      map[string]string{"wfs": "http://www.opengis.net/wfs/2.0"},
		SchemaLocations: map[string]string{Namespace: "http://schemas.example.com/ows/1.1.0/owsAll.xsd"},
	}, opts)

	t.Run("must be error on a missing file", func(t *testing.T) {
		_, err := LoadEncodeOptions(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(err, os.ErrNotExist)
	})
}
