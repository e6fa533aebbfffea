package chart

// Params are the rendering parameters of a generated page.
type Params struct {
	// Name is the logical page name, used for output file names.
	Name string `yaml:"name"`
	// Category is the column holding the category labels.
	Category string `yaml:"category"`
	// Values holds the value columns. Bar charts use the first one only.
	Values []string `yaml:"values"`
	Title  string   `yaml:"title"`
	XLabel string   `yaml:"xlabel"`
	YLabel string   `yaml:"ylabel"`
	// Rotation of the category tick labels, in degrees.
	Rotation float64 `yaml:"rotation"`
	Format   Format  `yaml:"format"`
}

func (p Params) value() string {
	if len(p.Values) == 0 {
		return ""
	}

	return p.Values[0]
}
