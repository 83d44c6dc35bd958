// Package batch runs a set of independent row writes on a bounded pool of
// workers and reports the outcome of every one of them.
package batch

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrQueueFull is returned by SubmitJob when the dispatcher queue has no room.
var ErrQueueFull = errors.New("batch: job queue full")

// Job is a unit of work, typically one row update.
type Job interface {
	Execute(ctx context.Context) error // The method that performs the actual work
	ID() string                        // A unique identifier for the job
}

// Func adapts a closure to Job.
type Func struct {
	Key string
	Fn  func(ctx context.Context) error
}

func (f Func) Execute(ctx context.Context) error { return f.Fn(ctx) }
func (f Func) ID() string                        { return f.Key }

// Result is the outcome of one executed job.
type Result struct {
	JobID string
	Err   error
}

// Worker pulls jobs from its own channel after registering it in the pool.
type Worker struct {
	ID         int
	WorkerPool chan chan Job // A pool of channels, used to register this worker's job channel
	JobChannel chan Job      // A channel specific to this worker, to receive jobs
	Quit       chan bool     // A channel to signal the worker to stop
	Wg         *sync.WaitGroup
	done       func(Result)
	logger     *logrus.Logger
}

// NewWorker creates a new Worker.
func NewWorker(id int, workerPool chan chan Job, wg *sync.WaitGroup, done func(Result), logger *logrus.Logger) Worker {
	return Worker{
		ID:         id,
		WorkerPool: workerPool,
		JobChannel: make(chan Job),
		Quit:       make(chan bool),
		Wg:         wg,
		done:       done,
		logger:     logger,
	}
}

// Start makes the Worker listen for jobs on its JobChannel.
func (w Worker) Start(ctx context.Context) {
	w.Wg.Add(1)
	go func() {
		defer w.Wg.Done()
		for {
			w.WorkerPool <- w.JobChannel

			select {
			case job := <-w.JobChannel:
				err := ctx.Err()
				if err == nil {
					err = job.Execute(ctx)
				}
				if err != nil {
					w.logger.WithFields(logrus.Fields{"worker": w.ID, "job": job.ID(), "error": err.Error()}).Warn("Batch job failed")
				} else {
					w.logger.WithFields(logrus.Fields{"worker": w.ID, "job": job.ID()}).Debug("Batch job finished")
				}
				w.done(Result{JobID: job.ID(), Err: err})
			case <-w.Quit:
				return
			}
		}
	}()
}

// Stop signals the worker to stop processing new jobs.
func (w Worker) Stop() {
	go func() {
		w.Quit <- true
	}()
}

// Dispatcher manages a pool of workers and dispatches jobs to them.
type Dispatcher struct {
	MaxWorkers int
	WorkerPool chan chan Job // A pool of worker job channels
	JobQueue   chan Job      // A buffered channel for incoming jobs
	Workers    []Worker
	Wg         sync.WaitGroup // To wait for all workers to finish
	Quit       chan bool

	logger  *logrus.Logger
	pending sync.WaitGroup
	mu      sync.Mutex
	results map[string]error
}

// NewDispatcher creates a new Dispatcher. maxWorkers below 1 is treated as 1.
func NewDispatcher(maxWorkers, jobQueueSize int, logger *logrus.Logger) *Dispatcher {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Dispatcher{
		MaxWorkers: maxWorkers,
		WorkerPool: make(chan chan Job, maxWorkers),
		JobQueue:   make(chan Job, jobQueueSize),
		Workers:    make([]Worker, 0, maxWorkers),
		Quit:       make(chan bool),
		logger:     logger,
		results:    make(map[string]error),
	}
}

// Run starts the dispatcher and its workers.
func (d *Dispatcher) Run(ctx context.Context) {
	for i := 1; i <= d.MaxWorkers; i++ {
		worker := NewWorker(i, d.WorkerPool, &d.Wg, d.record, d.logger)
		d.Workers = append(d.Workers, worker)
		worker.Start(ctx)
	}
	go d.dispatch()
}

func (d *Dispatcher) record(r Result) {
	d.mu.Lock()
	d.results[r.JobID] = r.Err
	d.mu.Unlock()
	d.pending.Done()
}

func (d *Dispatcher) dispatch() {
	for {
		select {
		case job := <-d.JobQueue:
			go func(job Job) {
				jobChannel := <-d.WorkerPool
				jobChannel <- job
			}(job)
		case <-d.Quit:
			return
		}
	}
}

// SubmitJob adds a job to the queue without blocking.
func (d *Dispatcher) SubmitJob(job Job) error {
	d.pending.Add(1)
	select {
	case d.JobQueue <- job:
		return nil
	default:
		d.pending.Done()
		return ErrQueueFull
	}
}

// Wait blocks until every submitted job has reported a result.
func (d *Dispatcher) Wait() {
	d.pending.Wait()
}

// Stop shuts down the dispatch loop and all workers. Call it after Wait.
func (d *Dispatcher) Stop() {
	d.Quit <- true
	for _, worker := range d.Workers {
		worker.Stop()
	}
	d.Wg.Wait()
	close(d.JobQueue)
	close(d.WorkerPool)
}

func (d *Dispatcher) outcome(id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	err, ok := d.results[id]
	return ok, err
}
