package sim

import "math/rand"

// Job is one unit of simulator work: a private Setup copy so concurrent
// jobs never clobber each other, plus the RNG each job's fight draws
// from. The seed is derived from the batch's parent seed XOR the job's
// serial number, then advanced once, exactly matching the source's
// formula so regression batches stay bit-stable across thread counts.
type Job struct {
	Setup  *Setup
	Serial int
	rng    *rand.Rand

	Stats    map[int]*Statistic
	Result   *Result
	oldState *Setup
}

// newJob builds job number serial from the batch's base setup and seed.
func newJob(base *Setup, parentSeed uint64, serial int) *Job {
	seed := parentSeed ^ uint64(serial)
	src := rand.NewSource(int64(seed))
	rng := rand.New(src)
	rng.Int63() // advance once, matching the source's seed-then-advance formula
	return &Job{Setup: base.Clone(), Serial: serial, rng: rng}
}

// run executes this job's single fight.
func (j *Job) run(config Configuration, flak FlakConfig, opts RunOptions) {
	oldState := j.Setup.Clone()
	stats, result := RunSimulation(j.Setup, config, flak, opts, j.rng)
	result.SeriesIndex = j.Serial
	j.Stats = stats
	j.Result = result
	j.oldState = oldState
}
