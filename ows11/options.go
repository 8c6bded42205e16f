package ows11

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/delta10/ows/internal/config"
	"github.com/delta10/ows/internal/utils"
)

// LoadEncodeOptions reads EncodeOptions from a YAML file. ${VAR}
// references in schema locations are replaced by environment values.
func LoadEncodeOptions(path string) (EncodeOptions, error) {
	cfg, err := config.NewConfig(path)
	if err != nil {
		return EncodeOptions{}, fmt.Errorf("loading encode options from «%s»: %w", path, err)
	}

	opts := EncodeOptions{
		Indent:          cfg.Indent,
		XMLDeclaration:  cfg.XMLDeclaration,
		Namespaces:      cfg.Namespaces,
		SchemaLocations: make(map[string]string, len(cfg.SchemaLocations)),
	}
	for ns, location := range cfg.SchemaLocations {
		opts.SchemaLocations[ns] = utils.EnvSubst(location)
	}

	logger.Info(fmt.Sprintf("encode options loaded from «%s»: %d namespace(s), %d schema location(s)",
		path, len(opts.Namespaces), len(opts.SchemaLocations)))

	return opts, nil
}
