package bootstrap

import "math/rand"

// Resampler draws bootstrap resamples from a pool of outcomes.
type Resampler struct {
	rng *rand.Rand
}

func NewResampler(seed int64) *Resampler {
	return &Resampler{rng: rand.New(rand.NewSource(seed))}
}

// Resample returns n outcomes drawn uniformly at random, with replacement,
// from pool.
func (r *Resampler) Resample(pool Population, n int) Population {
	return r.ResampleInto(make(Population, 0, n), pool, n)
}

// ResampleInto is Resample reusing dst's storage.
func (r *Resampler) ResampleInto(dst, pool Population, n int) Population {
	dst = dst[:0]
	if len(pool) == 0 {
		return dst
	}

	for i := 0; i < n; i++ {
		dst = append(dst, pool[r.rng.Intn(len(pool))])
	}
	return dst
}
