package chip8

import (
	"math/rand"
	"time"
)

// RandomSource produces uniformly distributed random bytes for the RND instruction.
type RandomSource interface {
	Byte() byte
}

// Random is a RandomSource backed by a math/rand generator.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random source for the given seed. A seed of 0 selects a time based seed.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Byte returns the next random byte.
func (r *Random) Byte() byte {
	return byte(r.rng.Intn(256))
}
