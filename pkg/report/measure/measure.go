package measure

type DefaultMeasure struct {
	Pages map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Pages: make(map[string]Metric),
	}
}

func (m *DefaultMeasure) AddMetric(name string) Metric {
	mt := &DefaultMetric{}
	m.Pages[name] = mt

	return mt
}

// GetMetric returns the metric of the named page, or nil if it was never added.
func (m *DefaultMeasure) GetMetric(name string) Metric {
	return m.Pages[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	return m.Pages
}

var _ Measure = (*DefaultMeasure)(nil)
