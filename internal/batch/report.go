package batch

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Failure is a job that did not complete.
type Failure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
	Err   error  `json:"-"`
}

// Report lists job ids by outcome, both in submission order.
type Report struct {
	Succeeded []string  `json:"succeeded"`
	Failed    []Failure `json:"failed"`
}

func (r Report) Total() int {
	return len(r.Succeeded) + len(r.Failed)
}

// Err returns the first failure, or nil when every job succeeded.
func (r Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return r.Failed[0].Err
}

// Run executes jobs on at most workers goroutines and waits for all of them.
// Job ids must be unique within one call.
func Run(ctx context.Context, workers int, logger *logrus.Logger, jobs []Job) Report {
	report := Report{Succeeded: []string{}, Failed: []Failure{}}
	if len(jobs) == 0 {
		return report
	}

	d := NewDispatcher(workers, len(jobs), logger)
	d.Run(ctx)
	rejected := make(map[string]error)
	for _, job := range jobs {
		if err := d.SubmitJob(job); err != nil {
			rejected[job.ID()] = err
		}
	}
	d.Wait()
	d.Stop()

	for _, job := range jobs {
		ok, err := d.outcome(job.ID())
		if !ok {
			err = rejected[job.ID()]
		}
		if err != nil {
			report.Failed = append(report.Failed, Failure{ID: job.ID(), Error: err.Error(), Err: err})
			continue
		}
		report.Succeeded = append(report.Succeeded, job.ID())
	}
	logger.WithFields(logrus.Fields{
		"jobs":      len(jobs),
		"succeeded": len(report.Succeeded),
		"failed":    len(report.Failed),
	}).Info("Batch finished")
	return report
}
