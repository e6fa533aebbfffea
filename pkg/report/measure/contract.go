package measure

import "time"

type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

type Metric interface {
	AddGenerationDuration(elapsed time.Duration)
	AddEmissionDuration(elapsed time.Duration)
	GenerationDuration() time.Duration
	EmissionDuration() time.Duration
	SetTotalDuration(totalDuration time.Duration)
	GetTotalDuration() time.Duration
	SetFailed()
	Failed() bool
}
