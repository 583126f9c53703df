package fcode

import "math/rand"

const (
	printableLow  = 0x20
	printableHigh = 0x7e
)

// fullPrintablePool returns every printable ASCII character except '?' and
// '#', which are never allowed in a generated code.
func fullPrintablePool() []byte {
	pool := make([]byte, 0, printableHigh-printableLow+1)
	for c := byte(printableLow); c <= printableHigh; c++ {
		if c == '?' || c == '#' {
			continue
		}
		pool = append(pool, c)
	}
	return pool
}

// safeLeadPool narrows fullPrintablePool to characters that, alone, don't
// already trip IsSpecial — i.e. good candidates for the first character of
// a freshly generated code. When the master list blocks every character
// (pathological configuration), the pool is empty and the caller falls back
// to the full pool so generation still terminates.
func (l *List) safeLeadPool(full []byte) []byte {
	pool := make([]byte, 0, len(full))
	for _, c := range full {
		if !l.IsSpecial(string(c), true) {
			pool = append(pool, c)
		}
	}
	return pool
}

// GenerateRandomCode emits a three-character code that passes
// IsAllowedRandomCode. It narrows to characters that survive a
// single-character IsSpecial check before rejection-sampling the remaining
// two characters, so termination is guaranteed even when the master list
// blocks most or all of the ASCII range.
func (l *List) GenerateRandomCode(rng *rand.Rand, host Host) string {
	full := fullPrintablePool()
	lead := l.safeLeadPool(full)
	if len(lead) == 0 {
		lead = full
	}

	const maxAttempts = 2000
	buf := make([]byte, 3)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		buf[0] = lead[rng.Intn(len(lead))]
		buf[1] = randDistinct(rng, full, buf[0])
		buf[2] = randDistinct(rng, full, buf[0], buf[1])
		code := string(buf)
		if l.IsAllowedRandomCode(code, host) {
			return code
		}
	}

	// Pathological configuration (e.g. every character blocked): give up on
	// full validation but still return a 3-character code built from
	// distinct characters, so callers never block forever.
	buf[0] = lead[rng.Intn(len(lead))]
	buf[1] = randDistinct(rng, full, buf[0])
	buf[2] = randDistinct(rng, full, buf[0], buf[1])
	return string(buf)
}

// randDistinct picks a random character from pool that isn't any of used.
func randDistinct(rng *rand.Rand, pool []byte, used ...byte) byte {
	for attempt := 0; attempt < 64; attempt++ {
		c := pool[rng.Intn(len(pool))]
		if !containsByte(used, c) {
			return c
		}
	}
	for _, c := range pool {
		if !containsByte(used, c) {
			return c
		}
	}
	return pool[0]
}

func containsByte(bs []byte, c byte) bool {
	for _, b := range bs {
		if b == c {
			return true
		}
	}
	return false
}
