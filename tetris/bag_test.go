package tetris_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draws(b *tetris.Bag, n int) []tetris.Kind {
	out := make([]tetris.Kind, n)
	for i := range out {
		out[i] = b.Draw()
	}
	return out
}

func TestBagFairness(t *testing.T) {
	bag := tetris.NewBag(rand.NewPCG(1, 2))
	seq := draws(bag, 100*tetris.KindCount)

	for start := 0; start < len(seq); start += tetris.KindCount {
		window := seq[start : start+tetris.KindCount]
		assert.ElementsMatch(t, tetris.Kinds[:], window, "bag starting at draw %d", start)
	}
}

func TestBagMaxGap(t *testing.T) {
	bag := tetris.NewBag(rand.NewPCG(42, 42))
	seq := draws(bag, 700)

	last := make(map[tetris.Kind]int)
	for i, k := range seq {
		if prev, ok := last[k]; ok {
			assert.LessOrEqual(t, i-prev-1, 12, "gap for %s ending at draw %d", k, i)
		}
		last[k] = i
	}
	assert.Len(t, last, tetris.KindCount)
}

func TestBagDeterministic(t *testing.T) {
	a := tetris.NewBag(rand.NewPCG(9, 10))
	b := tetris.NewBag(rand.NewPCG(9, 10))
	assert.Equal(t, draws(a, 50), draws(b, 50))

	c := tetris.NewBag(rand.NewPCG(11, 12))
	assert.NotEqual(t, draws(tetris.NewBag(rand.NewPCG(9, 10)), 50), draws(c, 50))
}

func TestBagPeek(t *testing.T) {
	bag := tetris.NewBag(rand.NewPCG(3, 4))

	next := bag.Peek(tetris.NextCount)
	require.Len(t, next, tetris.NextCount)
	assert.Equal(t, next, bag.Peek(tetris.NextCount), "peek must not consume")
	assert.Equal(t, next, draws(bag, tetris.NextCount))
}

func TestBagRefillThreshold(t *testing.T) {
	bag := tetris.NewBag(rand.NewPCG(5, 6))
	assert.Equal(t, 0, bag.Len())

	bag.Draw()
	assert.Equal(t, 6, bag.Len())

	// Below seven queued, the next draw appends a whole bag first.
	bag.Draw()
	assert.Equal(t, 12, bag.Len())

	for bag.Len() > 7 {
		bag.Draw()
	}
	bag.Draw()
	assert.Equal(t, 6, bag.Len())
}

func TestBagReset(t *testing.T) {
	bag := tetris.NewBag(rand.NewPCG(5, 6))
	draws(bag, 3)
	bag.Reset()
	assert.Equal(t, 0, bag.Len())
	assert.ElementsMatch(t, tetris.Kinds[:], draws(bag, tetris.KindCount))
}

func BenchmarkBagDraw(b *testing.B) {
	bag := tetris.NewBag(rand.NewPCG(1, 1))
	for b.Loop() {
		bag.Draw()
	}
}
