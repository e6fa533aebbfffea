package measure

import (
	"time"

	"github.com/askiada/survey-report/pkg/report/model"
)

type runMeasure struct {
	Measure
}

func (rm *runMeasure) New() error {
	rm.AddMetric(model.StartPage.Name)
	rm.AddMetric(model.EndPage.Name)

	return nil
}

func (rm *runMeasure) PreparePage(_, page *model.PageInfo) error {
	rm.AddMetric(page.Name)

	return nil
}

func (rm *runMeasure) OnPageOutput(_, page *model.PageInfo, generationDuration, emissionDuration time.Duration) error {
	mt := rm.GetMetric(page.Name)
	mt.AddGenerationDuration(generationDuration)
	mt.AddEmissionDuration(emissionDuration)
	mt.SetTotalDuration(generationDuration + emissionDuration)

	return nil
}

func (rm *runMeasure) OnPageFailure(_, page *model.PageInfo, _ error) error {
	rm.GetMetric(page.Name).SetFailed()

	return nil
}

func (rm *runMeasure) Finish(_ *model.PageInfo, totalDuration time.Duration) error {
	rm.GetMetric(model.EndPage.Name).SetTotalDuration(totalDuration)

	return nil
}

// RunMeasure records the durations of every page of a run into measure.
func RunMeasure(measure Measure) model.RunOption {
	return &runMeasure{measure}
}
