package measure

import (
	"time"
)

// DefaultMetric accumulates the durations of one page. Pages are produced one at a time so
// there is no locking.
type DefaultMetric struct {
	TotalDuration     time.Duration
	generationElapsed time.Duration
	emissionElapsed   time.Duration
	failed            bool
}

func (mt *DefaultMetric) AddGenerationDuration(elapsed time.Duration) {
	mt.generationElapsed += elapsed
}

func (mt *DefaultMetric) AddEmissionDuration(elapsed time.Duration) {
	mt.emissionElapsed += elapsed
}

func (mt *DefaultMetric) GenerationDuration() time.Duration {
	return round(mt.generationElapsed)
}

func (mt *DefaultMetric) EmissionDuration() time.Duration {
	return round(mt.emissionElapsed)
}

func (mt *DefaultMetric) SetTotalDuration(totalDuration time.Duration) {
	mt.TotalDuration = totalDuration
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	return round(mt.TotalDuration)
}

func (mt *DefaultMetric) SetFailed() {
	mt.failed = true
}

func (mt *DefaultMetric) Failed() bool {
	return mt.failed
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Hour)
	case d > time.Minute:
		d = d.Round(time.Minute)
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}
