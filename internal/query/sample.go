// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package query

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Sampler draws uniform random samples without replacement. One Sampler is
// shared by all requests; its source is guarded by a mutex.
type Sampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSampler returns a Sampler seeded with seed, or with the current time
// when seed is zero. A fixed seed makes sampling reproducible in tests.
func NewSampler(seed uint64) *Sampler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Sampler{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// pick returns k distinct indices in [0, n) using a partial Fisher-Yates
// shuffle.
func (s *Sampler) pick(n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < k; i++ {
		j := i + s.rnd.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// Sample returns up to k distinct items chosen uniformly at random. When
// items holds fewer than k elements all of them are returned, in random
// order. A non-positive k or empty input yields an empty slice.
func Sample[T any](s *Sampler, items []T, k int) []T {
	if k <= 0 || len(items) == 0 {
		return []T{}
	}
	if k > len(items) {
		k = len(items)
	}
	out := make([]T, 0, k)
	for _, i := range s.pick(len(items), k) {
		out = append(out, items[i])
	}
	return out
}

// One returns a single random item, or false when items is empty.
func One[T any](s *Sampler, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[s.pick(len(items), 1)[0]], true
}
