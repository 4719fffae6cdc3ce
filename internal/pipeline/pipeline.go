// Package pipeline runs accepted page records through an ordered set of
// stages. Any stage may drop a record with a reason; a record that clears
// every stage has been durably written.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/lookuply/webcrawler/internal/crawler"
)

// Decision is the outcome of running one record through the pipeline.
// When Accepted is false, Stage and Reason identify where and why the
// record was dropped.
type Decision struct {
	Accepted bool
	Stage    string
	Reason   string
}

// Stage processes one record. A non-empty drop reason terminates the
// pipeline for that record; an error does the same but is logged as a
// stage failure rather than an expected drop.
type Stage interface {
	Name() string
	Process(record *crawler.PageRecord) (dropReason string, err error)
}

// Pipeline applies its stages to each record in fixed order.
type Pipeline struct {
	stages []Stage
	logger *zap.Logger
}

func New(logger *zap.Logger, stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages, logger: logger}
}

// Process runs record through every stage until one drops it or errors.
// Drops are expected outcomes and logged at debug level only.
func (p *Pipeline) Process(record *crawler.PageRecord) Decision {
	for _, stage := range p.stages {
		reason, err := stage.Process(record)
		if err != nil {
			p.logger.Error("pipeline stage failed",
				zap.String("stage", stage.Name()),
				zap.String("url", record.URL),
				zap.Error(err),
			)
			return Decision{Stage: stage.Name(), Reason: "stage error"}
		}
		if reason != "" {
			p.logger.Debug("record dropped",
				zap.String("stage", stage.Name()),
				zap.String("url", record.URL),
				zap.String("reason", reason),
			)
			return Decision{Stage: stage.Name(), Reason: reason}
		}
	}
	return Decision{Accepted: true}
}
