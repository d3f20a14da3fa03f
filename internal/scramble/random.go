package scramble

import (
    "math/rand/v2"
    "time"
)

// RandomProvider draws the integers and filler characters used by the engine.
// It is not safe for concurrent use; each engine owns its own provider.
type RandomProvider struct {
    r *rand.Rand
}

// NewRandom returns a provider seeded deterministically from seed.
func NewRandom(seed uint64) *RandomProvider {
    return &RandomProvider{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func newClockRandom() *RandomProvider {
    return NewRandom(uint64(time.Now().UnixNano()))
}

// Int returns a uniform integer in [min, max], inclusive on both ends.
func (p *RandomProvider) Int(min, max int) int {
    if max <= min {
        return min
    }
    return min + p.r.IntN(max-min+1)
}

// Float returns a uniform float in [0, 1).
func (p *RandomProvider) Float() float64 {
    return p.r.Float64()
}

// Char returns one character drawn from r: uniform over the interval for a
// pair, uniform over the codes for a set.
func (p *RandomProvider) Char(r CharRange) rune {
    switch {
    case len(r.Codes) == 0:
        return 0
    case r.Interval:
        return rune(p.Int(int(r.Codes[0]), int(r.Codes[len(r.Codes)-1])))
    default:
        return r.Codes[p.r.IntN(len(r.Codes))]
    }
}
