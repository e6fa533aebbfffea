// Package config holds the output layout and the ordered page catalog of the report.
package config

import (
	_ "embed"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/askiada/survey-report/pkg/chart"
	"github.com/askiada/survey-report/pkg/page"
	"github.com/askiada/survey-report/pkg/report/model"
)

//go:embed report.yaml
var defaultReport []byte

var (
	ErrEmptyCatalog    = errors.New("page catalog is empty")
	ErrNameMustBeSet   = errors.New("page name must be set")
	ErrSourceMustBeSet = errors.New("page source must be set")
	ErrKindMustBeSet   = errors.New("page kind must be set")
	ErrDuplicateName   = errors.New("duplicate page name")
	ErrInvalidLayout   = errors.New("invalid layout")
)

// Layout describes where the report reads its inputs and writes its outputs.
type Layout struct {
	DataDir    string `yaml:"data_dir"`
	OutDir     string `yaml:"out_dir"`
	FiguresDir string `yaml:"figures_dir"`
	PDF        string `yaml:"pdf"`
	Graph      string `yaml:"graph"`
	DPI        int    `yaml:"dpi"`

	// PageWidth and PageHeight are the size of the PDF pages, in inches.
	PageWidth  float64 `yaml:"page_width"`
	PageHeight float64 `yaml:"page_height"`
}

// PageSize returns the PDF page size.
func (l Layout) PageSize() (w, h vg.Length) {
	return vg.Length(l.PageWidth) * vg.Inch, vg.Length(l.PageHeight) * vg.Inch
}

// PageSpec binds a CSV source to a generator.
type PageSpec struct {
	// Label identifies the page in logs.
	Label    string     `yaml:"label"`
	Source   string     `yaml:"source"`
	Required []string   `yaml:"required"`
	Kind     chart.Kind `yaml:"kind"`

	chart.Params `yaml:",inline"`
}

// Config is the full report definition.
type Config struct {
	Layout Layout     `yaml:"layout"`
	Pages  []PageSpec `yaml:"pages"`
}

// Default returns the embedded report definition.
func Default() (*Config, error) {
	return Load(defaultReport)
}

// Load decodes and validates a report definition.
func Load(content []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode report definition")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the layout and the catalog. Page names must be unique because they name
// the output images, and must differ from the names of the fixed pages and run boundaries.
func (c *Config) Validate() error {
	if c.Layout.DPI <= 0 || c.Layout.PageWidth <= 0 || c.Layout.PageHeight <= 0 {
		return errors.Wrapf(ErrInvalidLayout, "dpi %d, page %gx%g", c.Layout.DPI, c.Layout.PageWidth, c.Layout.PageHeight)
	}
	if len(c.Pages) == 0 {
		return ErrEmptyCatalog
	}

	// Fixed pages and run boundaries share the namespace of catalog entries.
	seen := map[string]struct{}{
		page.CoverName:       {},
		page.SummaryName:     {},
		model.StartPage.Name: {},
		model.EndPage.Name:   {},
	}
	for i, spec := range c.Pages {
		switch {
		case spec.Name == "":
			return errors.Wrapf(ErrNameMustBeSet, "page %d", i+1)
		case spec.Source == "":
			return errors.Wrapf(ErrSourceMustBeSet, "page %s", spec.Name)
		case spec.Kind == "":
			return errors.Wrapf(ErrKindMustBeSet, "page %s", spec.Name)
		}
		if _, ok := seen[spec.Name]; ok {
			return errors.Wrapf(ErrDuplicateName, "page %s", spec.Name)
		}
		seen[spec.Name] = struct{}{}
	}

	return nil
}

// Path returns the location of the spec's CSV source.
func (c *Config) Path(spec PageSpec) string {
	if filepath.IsAbs(spec.Source) {
		return spec.Source
	}

	return filepath.Join(c.Layout.DataDir, spec.Source)
}

// Display returns the label of spec, or its name when no label is set.
func (s PageSpec) Display() string {
	if s.Label != "" {
		return s.Label
	}

	return s.Name
}
