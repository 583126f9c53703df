package sim

import (
	"errors"
	"sync"
)

// ErrNoMoreJobs is returned by Init when no first job can be produced.
// makeJob always produces a job, so Init does not return it in practice;
// Run stops on its limit or stopper and never returns this error.
var ErrNoMoreJobs = errors.New("sim: no more jobs")

// Limit decides whether another job should be produced, given the current
// battle count.
type Limit interface {
	// Continue reports whether a job may still be produced given n
	// battles completed so far in this Run call.
	Continue(n int) bool
}

type finiteLimit struct{ target int }

// Continue implements Limit.
func (l finiteLimit) Continue(n int) bool { return n < l.target }

// MakeFiniteLimit returns a limit that stops once count more battles have
// completed within this Run call.
func MakeFiniteLimit(count int) Limit { return finiteLimit{target: count} }

type noLimit struct{}

// Continue implements Limit.
func (noLimit) Continue(int) bool { return true }

// MakeNoLimit returns a limit that never stops on its own.
func MakeNoLimit() Limit { return noLimit{} }

type seriesLimit struct{ seriesLength int }

// Continue implements Limit.
func (l seriesLimit) Continue(n int) bool {
	if l.seriesLength <= 0 {
		return n < 1
	}
	return n < l.seriesLength
}

// MakeSeriesLimit returns a limit that allows seriesLength fights counted
// from the start of the Run call (one fight when seriesLength <= 0). The
// count is not aligned on series boundaries: fights completed before the
// Run call do not shorten it.
func MakeSeriesLimit(seriesLength int) Limit { return seriesLimit{seriesLength: seriesLength} }

// Stopper reports whether a running batch should halt early (e.g. a user
// cancel request).
type Stopper interface {
	ShouldStop() bool
}

// StopSignal is a simple cooperative cancellation flag: each Run call
// should be handed a fresh one, so a stale stop from a prior batch never
// leaks into a new one (§4.4 Cancellation).
type StopSignal struct {
	mu      sync.Mutex
	stopped bool
}

// NewStopSignal returns a signal in the "not stopped" state.
func NewStopSignal() *StopSignal { return &StopSignal{} }

// Set flags the signal as stopped.
func (s *StopSignal) Set() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

// ShouldStop implements Stopper.
func (s *StopSignal) ShouldStop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// UpdateListener is called at most once per update interval while a run
// is in progress.
type UpdateListener func(rl *ResultList)

// Runner is the batch abstraction: holds the immutable inputs for a batch
// (setup, options, config, flak config, base seed) and accumulates
// results into a ResultList as fights complete.
type Runner struct {
	setup  *Setup
	config Configuration
	flak   FlakConfig
	opts   RunOptions

	mu      sync.Mutex
	results *ResultList
	serial  int

	seriesLength int

	onUpdate UpdateListener
}

// NewRunner builds a serial Runner over the given batch inputs.
func NewRunner(setup *Setup, config Configuration, flak FlakConfig, opts RunOptions) *Runner {
	return &Runner{setup: setup, config: config, flak: flak, opts: opts, results: NewResultList()}
}

// ResultList returns the runner's accumulated results.
func (r *Runner) ResultList() *ResultList { return r.results }

// OnUpdate registers a listener invoked after the runner's MakeJob/
// FinishJob pair (the runner itself does not throttle; ParallelRunner's
// update cadence does that for batch-level callers).
func (r *Runner) OnUpdate(fn UpdateListener) { r.onUpdate = fn }

// Init runs the first fight, establishing the series length the rest of
// the batch aligns on. Guarantees GetNumBattles() >= 1 on success.
func (r *Runner) Init() error {
	job := r.makeJob()
	if job == nil {
		return ErrNoMoreJobs
	}
	job.run(r.config, r.flak, r.opts)
	r.finishJob(job)
	r.seriesLength = job.Result.SeriesLength
	return nil
}

// makeJob must execute under the runner's mutex: it allocates the next
// serial number and clones setup state.
func (r *Runner) makeJob() *Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	serial := r.serial
	r.serial++
	return newJob(r.setup, r.config.Seed, serial)
}

// finishJob must execute under the runner's mutex: it incorporates a
// completed job's result into the shared ResultList.
func (r *Runner) finishJob(job *Job) {
	r.mu.Lock()
	r.results.AddResult(job.oldState, job.Setup, job.Stats, job.Result)
	n := r.results.GetNumBattles()
	r.mu.Unlock()
	if r.onUpdate != nil {
		r.onUpdate(r.results)
	}
	_ = n
}

// Run continues producing and running jobs, serially, until limit no
// longer allows another job or stopper reports true.
func (r *Runner) Run(limit Limit, stopper Stopper) {
	start := r.results.GetNumBattles()
	for {
		if stopper != nil && stopper.ShouldStop() {
			return
		}
		if !limit.Continue(r.results.GetNumBattles() - start) {
			return
		}
		job := r.makeJob()
		if job == nil {
			return
		}
		job.run(r.config, r.flak, r.opts)
		r.finishJob(job)
	}
}
