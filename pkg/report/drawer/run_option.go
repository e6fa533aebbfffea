package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/survey-report/pkg/report/measure"
	"github.com/askiada/survey-report/pkg/report/model"
)

type runDrawer struct {
	Drawer
	m measure.Measure
}

func (rd *runDrawer) New() error {
	err := rd.AddPage(model.StartPage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start page to drawer")
	}
	err = rd.AddPage(model.EndPage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end page to drawer")
	}

	return nil
}

func (rd *runDrawer) PreparePage(parentPage, page *model.PageInfo) error {
	err := rd.AddPage(page.Name)
	if err != nil {
		return err
	}
	err = rd.AddLink(parentPage.Name, page.Name)
	if err != nil {
		return err
	}

	return nil
}

func (rd *runDrawer) OnPageOutput(_, _ *model.PageInfo, _, _ time.Duration) error {
	return nil
}

func (rd *runDrawer) OnPageFailure(parentPage, page *model.PageInfo, pageErr error) error {
	err := rd.MarkFailed(parentPage.Name, page.Name, pageErr.Error())
	if err != nil {
		return errors.Wrap(err, "unable to mark failed page")
	}

	return nil
}

func (rd *runDrawer) Finish(lastPage *model.PageInfo, totalDuration time.Duration) error {
	err := rd.AddLink(lastPage.Name, model.EndPage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to link end page")
	}
	err = rd.SetTotalTime(model.EndPage.Name, totalDuration)
	if err != nil {
		return errors.Wrap(err, "unable to set total time")
	}

	if rd.m != nil {
		err = rd.AddMeasure(rd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = rd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw report run")
	}

	return nil
}

// RunDrawer draws the run graph once the run finishes. When measure is set, the graph is
// annotated with its durations. The measure option must run before the drawer.
func RunDrawer(drawer Drawer, measure measure.Measure) model.RunOption {
	return &runDrawer{drawer, measure}
}
