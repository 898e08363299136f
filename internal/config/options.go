package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-config-gen/models"
	"gopkg.in/yaml.v3"
)

// globalModuleSections are always kept in the global module.
var globalModuleSections = []string{"AppSettings"}

// ModuleOptionsFile is the layout of the module options file. YAML and JSON
// are both accepted:
//
//	modules:
//	  - module: Global
//	    include: ["AppSettings", "DomainService(:Orders|$)"]
//	  - module: Orders
//	    exclude: ["Orders:Internal"]
//	    excludeChildren: ["^Orders:Secrets$"]
//
// Leaving a list out means "no rule"; an empty list is a rule that matches
// nothing.
type ModuleOptionsFile struct {
	Modules []models.ModuleOption `yaml:"modules" validate:"required,min=1,dive"`
}

// LoadModuleOptions reads and validates the module options file at path.
func LoadModuleOptions(path string) ([]models.ModuleOption, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptionsFile, err)
	}
	defer f.Close()

	return decodeModuleOptions(f)
}

func decodeModuleOptions(r io.Reader) ([]models.ModuleOption, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file ModuleOptionsFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("file is empty")
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptionsFile, err)
	}

	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptionsFile, err)
	}

	return file.Modules, nil
}

// ModuleOptions returns the module options of this run, in output order.
//
// When an options file is configured it is the only source. Otherwise every
// configured module gets an unfiltered option, preceded by the global module
// option when one is configured.
func (cfg *StructuredConfig) ModuleOptions() ([]models.ModuleOption, error) {
	if cfg.Generator.OptionsFilePath != "" {
		return LoadModuleOptions(cfg.Generator.OptionsFilePath)
	}

	options := make([]models.ModuleOption, 0, len(cfg.Generator.Modules)+1)
	if cfg.Generator.GlobalModule != "" {
		options = append(options, GlobalModuleOption(cfg.Generator.GlobalModule, cfg.Generator.Modules))
	}
	for _, m := range cfg.Generator.Modules {
		options = append(options, models.NewModuleOption(m))
	}
	return options, nil
}

// GlobalModuleOption builds the option of the shared global module: it keeps
// the AppSettings section and the DomainService section restricted to the
// entries of modules.
//
// For modules ["Orders"] the include rules are
// ["AppSettings", "DomainService(:Orders|$)"].
func GlobalModuleOption(name string, modules []string) models.ModuleOption {
	alternatives := make([]string, 0, len(modules)+1)
	for _, m := range modules {
		alternatives = append(alternatives, ":"+regexp.QuoteMeta(m))
	}
	alternatives = append(alternatives, "$")

	include := append([]string{}, globalModuleSections...)
	include = append(include, "DomainService("+strings.Join(alternatives, "|")+")")

	return models.ModuleOption{
		ModuleName:          name,
		IncludePathPatterns: include,
	}
}
