package tetris

import "math/rand/v2"

// Bag is a 7-bag randomizer. It keeps a queue of upcoming kinds and appends a
// freshly shuffled permutation of all seven whenever fewer than seven remain,
// so every run of seven draws starting at a bag boundary holds each kind once.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag returns a bag drawing its shuffles from src. The first permutation is
// shuffled lazily, on the first Draw or Peek.
func NewBag(src rand.Source) *Bag {
	return &Bag{
		rng:   rand.New(src),
		queue: make([]Kind, 0, 2*KindCount),
	}
}

// fill tops the queue up so at least KindCount kinds are visible.
func (b *Bag) fill() {
	if len(b.queue) >= KindCount {
		return
	}

	perm := Kinds
	b.rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	b.queue = append(b.queue, perm[:]...)
}

// Draw pops the next kind.
func (b *Bag) Draw() Kind {
	b.fill()
	kind := b.queue[0]
	// Shift in place so the backing array is reused across bags.
	n := copy(b.queue, b.queue[1:])
	b.queue = b.queue[:n]
	return kind
}

// Peek returns up to n upcoming kinds without consuming them.
func (b *Bag) Peek(n int) []Kind {
	b.fill()
	n = min(n, len(b.queue))
	out := make([]Kind, n)
	copy(out, b.queue)
	return out
}

// Len returns the number of kinds currently queued.
func (b *Bag) Len() int {
	return len(b.queue)
}

// Reset drops the queued kinds; the next draw starts a new bag. The random
// stream is not rewound.
func (b *Bag) Reset() {
	b.queue = b.queue[:0]
}
