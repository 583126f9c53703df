package sim

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultUpdateInterval is the default sig_update throttle (§4.2.3: "at
// most once per configurable interval, default 500 ms").
const DefaultUpdateInterval = 500 * time.Millisecond

// ParallelRunner fans a batch's jobs out across a fixed worker pool. The
// pool is started at construction and stopped for good in Stop; workers
// live exactly as long as the runner (§9 "thread-pool lifetime").
type ParallelRunner struct {
	setup  *Setup
	config Configuration
	flak   FlakConfig
	opts   RunOptions

	mu           sync.Mutex
	results      *ResultList
	serial       int
	seriesLength int

	numWorkers int
	jobs       chan *Job
	done       chan *Job
	terminate  chan struct{}
	wg         sync.WaitGroup

	limiter  *rate.Limiter
	onUpdate UpdateListener
}

// NewParallelRunner starts numWorkers goroutines and returns a ready-to-use
// runner. Call Stop when the batch (and the runner) is no longer needed.
func NewParallelRunner(setup *Setup, config Configuration, flak FlakConfig, opts RunOptions, numWorkers int) *ParallelRunner {
	if numWorkers < 1 {
		numWorkers = 1
	}
	pr := &ParallelRunner{
		setup: setup, config: config, flak: flak, opts: opts,
		results: NewResultList(), numWorkers: numWorkers,
		jobs: make(chan *Job, numWorkers*4), done: make(chan *Job, numWorkers*4),
		terminate: make(chan struct{}),
		limiter:   rate.NewLimiter(rate.Every(DefaultUpdateInterval), 1),
	}
	for i := 0; i < numWorkers; i++ {
		pr.wg.Add(1)
		go pr.worker()
	}
	return pr
}

func (pr *ParallelRunner) worker() {
	defer pr.wg.Done()
	for {
		select {
		case <-pr.terminate:
			return
		case job, ok := <-pr.jobs:
			if !ok {
				return
			}
			job.run(pr.config, pr.flak, pr.opts)
			pr.done <- job
		}
	}
}

// ResultList returns the runner's accumulated results.
func (pr *ParallelRunner) ResultList() *ResultList { return pr.results }

// OnUpdate registers a listener invoked at most once per DefaultUpdateInterval
// while Run is in progress.
func (pr *ParallelRunner) OnUpdate(fn UpdateListener) { pr.onUpdate = fn }

func (pr *ParallelRunner) makeJob() *Job {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	serial := pr.serial
	pr.serial++
	return newJob(pr.setup, pr.config.Seed, serial)
}

func (pr *ParallelRunner) finishJob(job *Job) {
	pr.mu.Lock()
	pr.results.AddResult(job.oldState, job.Setup, job.Stats, job.Result)
	pr.mu.Unlock()
	if pr.onUpdate != nil && pr.limiter.Allow() {
		pr.onUpdate(pr.results)
	}
}

// Init runs exactly one fight (serially, establishing series length)
// before any parallel batch begins, mirroring Runner.Init's contract.
func (pr *ParallelRunner) Init() error {
	job := pr.makeJob()
	job.run(pr.config, pr.flak, pr.opts)
	pr.finishJob(job)
	pr.seriesLength = job.Result.SeriesLength
	return nil
}

// Run dispatches jobs to the worker pool until limit no longer allows
// another or stopper reports true, then drains in-flight jobs before
// returning (the draining is the synchronization guarantee that every
// worker is idle again once Run returns).
func (pr *ParallelRunner) Run(ctx context.Context, limit Limit, stopper Stopper) {
	start := pr.results.GetNumBattles()
	inFlight := 0
	produced := 0

	for {
		for inFlight < pr.numWorkers &&
			(stopper == nil || !stopper.ShouldStop()) &&
			limit.Continue(produced) {
			select {
			case pr.jobs <- pr.makeJob():
				inFlight++
				produced++
			case <-ctx.Done():
				goto drain
			}
		}
		if inFlight == 0 {
			return
		}
		select {
		case job := <-pr.done:
			pr.finishJob(job)
			inFlight--
		case <-ctx.Done():
			goto drain
		}
	}

drain:
	for inFlight > 0 {
		job := <-pr.done
		pr.finishJob(job)
		inFlight--
	}
	_ = start
}

// Stop terminates the worker pool permanently. The runner must not be
// used again afterward.
func (pr *ParallelRunner) Stop() {
	close(pr.terminate)
	pr.wg.Wait()
}
