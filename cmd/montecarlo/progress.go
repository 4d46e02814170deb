package main

import (
	"io"
	"os"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-montecarlo/internal/ensemble"
	"github.com/rxtech-lab/argo-montecarlo/internal/experiment"
	"github.com/schollz/progressbar/v3"
)

// progressReporter shows one progress bar per evaluated strategy.
type progressReporter struct {
	writer io.Writer
	paths  int
	bar    *progressbar.ProgressBar
}

func newProgressReporter(writer io.Writer, paths int) *progressReporter {
	if writer == nil {
		writer = os.Stderr
	}

	return &progressReporter{
		writer: writer,
		paths:  paths,
	}
}

func (p *progressReporter) callbacks() experiment.Callbacks {
	return experiment.Callbacks{
		OnStrategyStart: optional.Some(experiment.OnStrategyStartCallback(p.onStrategyStart)),
		OnStrategyEnd:   optional.Some(experiment.OnStrategyEndCallback(p.onStrategyEnd)),
		OnPathEvaluated: optional.Some(ensemble.OnPathEvaluatedCallback(p.onPathEvaluated)),
	}
}

func (p *progressReporter) onStrategyStart(_ int, strategyName string, _ int) error {
	p.bar = progressbar.NewOptions(p.paths,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionSetDescription(strategyName),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	return nil
}

func (p *progressReporter) onPathEvaluated(done int, _ int) error {
	if p.bar == nil {
		return nil
	}

	return p.bar.Set(done)
}

func (p *progressReporter) onStrategyEnd(_ int, _ experiment.RunResult) {
	if p.bar == nil {
		return
	}

	p.bar.Finish()
	p.bar = nil
}
