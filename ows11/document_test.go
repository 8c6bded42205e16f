package ows11

import (
	"testing"

	"github.com/jf-tech/go-corelib/strs"
	"github.com/stretchr/testify/require"
)

func TestDocumentRootHoldsOneRoot(t *testing.T) {
	require := require.New(t)

	f := NewFactory(NewPackage())

	t.Run("must be ok to set service identification alone", func(t *testing.T) {
		doc := f.CreateDocumentRoot()
		si := f.CreateServiceIdentificationType()
		doc.SetServiceIdentification(si)

		require.Same(si, doc.ServiceIdentification())
		name, v := doc.Root()
		require.Equal("ServiceIdentification", name)
		require.Same(si, v)

		require.Nil(doc.ServiceProvider())
		require.Nil(doc.OperationsMetadata())
		require.Nil(doc.Range())
		require.Nil(doc.Fees())
		require.Nil(doc.AbstractReferenceBase())
		require.Empty(doc.Mixed)
		require.Empty(doc.XMLNSPrefixMap)
		require.Empty(doc.XSISchemaLocation)
		require.False(doc.IsSetRangeClosure())
	})

	t.Run("must be ok to replace the root", func(t *testing.T) {
		doc := f.CreateDocumentRoot()
		doc.SetServiceIdentification(f.CreateServiceIdentificationType())
		sp := f.CreateServiceProviderType()
		doc.SetServiceProvider(sp)

		require.Nil(doc.ServiceIdentification())
		require.Same(sp, doc.ServiceProvider())
	})

	t.Run("must be ok to clear the root by setting nil", func(t *testing.T) {
		doc := f.CreateDocumentRoot()
		sp := f.CreateServiceProviderType()
		doc.SetServiceProvider(sp)

		doc.SetServiceIdentification(nil)
		require.Same(sp, doc.ServiceProvider(), "clearing another element must keep the root")

		doc.SetServiceProvider(nil)
		name, v := doc.Root()
		require.Empty(name)
		require.Nil(v)
	})

	t.Run("elements of the same type are told apart by name", func(t *testing.T) {
		doc := f.CreateDocumentRoot()
		doc.SetMinimumValue(&ValueType{Value: "1"})
		require.Equal("1", doc.MinimumValue().Value)
		require.Nil(doc.MaximumValue())
		require.Nil(doc.Value())

		doc.SetFees(strs.StrPtr("none"))
		require.Nil(doc.MinimumValue())
		require.Equal("none", *doc.Fees())
		require.Nil(doc.AccessConstraints())
	})

	t.Run("reference roots expose their base", func(t *testing.T) {
		doc := f.CreateDocumentRoot()
		sref := f.CreateServiceReferenceType()
		sref.Href = "http://example.com/r"
		doc.SetServiceReference(sref)

		require.Same(&sref.AbstractReferenceBaseType, doc.AbstractReferenceBase())
		require.Nil(doc.Reference())
		require.Same(sref, doc.ServiceReference())
	})

	t.Run("must be ok to clear the root", func(t *testing.T) {
		doc := f.CreateDocumentRoot()
		doc.SetExceptionReport(f.CreateExceptionReportType())
		doc.ClearRoot()
		require.Nil(doc.ExceptionReport())
	})
}

func TestDocumentRootMaps(t *testing.T) {
	require := require.New(t)

	doc := NewFactory(NewPackage()).CreateDocumentRoot()
	doc.XMLNSPrefixMap["wfs"] = "http://www.opengis.net/wfs"
	doc.XMLNSPrefixMap["wfs"] = "http://www.opengis.net/wfs/2.0"
	doc.XSISchemaLocation[Namespace] = "a.xsd"
	doc.XSISchemaLocation[Namespace] = "owsAll.xsd"

	require.Equal(map[string]string{"wfs": "http://www.opengis.net/wfs/2.0"}, doc.XMLNSPrefixMap)
	require.Equal(map[string]string{Namespace: "owsAll.xsd"}, doc.XSISchemaLocation)
}
