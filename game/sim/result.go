package sim

// Result is one fight's metadata: its weight contribution and where it
// sits within its series. Seed is not filled in and stays zero.
type Result struct {
	ThisBattleWeight int
	Seed             uint64
	SeriesLength     int
	SeriesIndex      int
	Setup            *Setup // post-battle state
}

// Statistic is one unit's per-fight combat record.
type Statistic struct {
	MinFightersAboard int
	TorpedoHitsDealt  int
	FightCount        int
}

// Range accumulates min/max-witnessed values for one combat metric across
// a batch, remembering the fight that set each extreme.
type Range struct {
	Min, Max             int
	MinWitness, MaxWitness *Result
	set                  bool
}

// Update folds in one fight's value, recording result as the new witness
// whenever it sets a new min or max.
func (r *Range) Update(value int, result *Result) {
	if !r.set {
		r.Min, r.Max = value, value
		r.MinWitness, r.MaxWitness = result, result
		r.set = true
		return
	}
	if value < r.Min {
		r.Min = value
		r.MinWitness = result
	}
	if value > r.Max {
		r.Max = value
		r.MaxWitness = result
	}
}

// UnitResult is one combatant's cumulative record across a batch.
type UnitResult struct {
	Fights, Won, Captured int

	Damage, Shield, FightersLost, TorpsFired, MinFightersAboard Range
}

func newUnitResult() *UnitResult {
	return &UnitResult{}
}

// ClassResult partitions the batch's fights into distinct owner-count
// outcome vectors (e.g. "owner 8 has 1 survivor" vs "owner 8 has 0").
type ClassResult struct {
	OwnerCounts      map[int]int // owner id -> surviving capital-ship count
	PlanetOwner      int         // 0 when no planet in the fight
	CumulativeWeight int
	Exemplar         *Result
}

func outcomeKey(oc map[int]int, planetOwner int) string {
	// deterministic string key: owners sorted ascending.
	owners := make([]int, 0, len(oc))
	for o := range oc {
		owners = append(owners, o)
	}
	sortInts(owners)
	key := make([]byte, 0, 32)
	for _, o := range owners {
		key = appendInt(key, o)
		key = append(key, ':')
		key = appendInt(key, oc[o])
		key = append(key, ',')
	}
	key = append(key, 'p')
	key = appendInt(key, planetOwner)
	return string(key)
}

func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}

func appendInt(b []byte, v int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	if v == 0 {
		return append(b, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(b, tmp[i:]...)
}

// ResultList aggregates an entire batch's worth of fights.
type ResultList struct {
	cumulativeWeight int
	numBattles       int

	units       map[int]*UnitResult // by original combatant id
	classes     []*ClassResult
	classByKey  map[string]int // outcome key -> index into classes
	lastClassIndex int
}

// NewResultList returns an empty aggregator.
func NewResultList() *ResultList {
	return &ResultList{units: make(map[int]*UnitResult), classByKey: make(map[string]int)}
}

// GetCumulativeWeight returns the sum of every incorporated fight's weight.
func (rl *ResultList) GetCumulativeWeight() int { return rl.cumulativeWeight }

// GetNumBattles returns how many fights have been incorporated.
func (rl *ResultList) GetNumBattles() int { return rl.numBattles }

// GetLastClassResultIndex returns the index of the class result most
// recently incremented by AddResult (for UI highlighting).
func (rl *ResultList) GetLastClassResultIndex() int { return rl.lastClassIndex }

// ClassResults returns every class result, in insertion order (callers
// that want weight-descending order should sort a copy; see SortedClasses).
func (rl *ResultList) ClassResults() []*ClassResult { return rl.classes }

// SortedClasses returns the class results ordered by cumulative weight
// descending.
func (rl *ResultList) SortedClasses() []*ClassResult {
	out := append([]*ClassResult{}, rl.classes...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].CumulativeWeight < out[j].CumulativeWeight; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// UnitResult returns the accumulated record for combatant id, creating an
// empty one on first access.
func (rl *ResultList) UnitResult(id int) *UnitResult {
	u, ok := rl.units[id]
	if !ok {
		u = newUnitResult()
		rl.units[id] = u
	}
	return u
}

// AddResult incorporates one fight: oldState and newState are the setups
// before and after the fight (parallel by combatant id), stats carries
// each unit's per-fight record, and result carries this fight's weight and
// series metadata.
func (rl *ResultList) AddResult(oldState, newState *Setup, stats map[int]*Statistic, result *Result) {
	rl.cumulativeWeight += result.ThisBattleWeight
	rl.numBattles++

	byID := make(map[int]*Ship, len(newState.Ships))
	for _, s := range newState.Ships {
		byID[s.Id] = s
	}

	outcome := map[int]int{}
	for _, oldShip := range oldState.Ships {
		newShip := byID[oldShip.Id]
		u := rl.UnitResult(oldShip.Id)
		u.Fights++

		survived := newShip != nil && newShip.Damage < 100 && newShip.Owner == oldShip.Owner
		captured := newShip != nil && newShip.Owner != oldShip.Owner
		if survived {
			u.Won++
			if newShip.HasWeapons() {
				outcome[newShip.Owner]++
			}
		}
		if captured {
			u.Captured++
		}

		if newShip != nil {
			u.Damage.Update(newShip.Damage, result)
			u.Shield.Update(newShip.Shield, result)
		}
		if st, ok := stats[oldShip.Id]; ok {
			u.TorpsFired.Update(st.TorpedoHitsDealt, result)
			u.MinFightersAboard.Update(st.MinFightersAboard, result)
		}
	}

	planetOwner := 0
	if newState.Planet != nil {
		planetOwner = newState.Planet.Owner
	}

	key := outcomeKey(outcome, planetOwner)
	idx, exists := rl.classByKey[key]
	if !exists {
		idx = len(rl.classes)
		rl.classes = append(rl.classes, &ClassResult{
			OwnerCounts: outcome, PlanetOwner: planetOwner, Exemplar: result,
		})
		rl.classByKey[key] = idx
	}
	rl.classes[idx].CumulativeWeight += result.ThisBattleWeight
	rl.lastClassIndex = idx
}
