package tetris

import "github.com/kamstrup/intmap"

// Stats counts what happened during one game: pieces spawned per kind, lock
// events, holds, and how many locks cleared 1, 2, 3 or 4 rows.
type Stats struct {
	spawned *intmap.Map[Kind, int]
	clears  *intmap.Map[int, int]
	locks   int
	holds   int
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{
		spawned: intmap.New[Kind, int](KindCount),
		clears:  intmap.New[int, int](4),
	}
}

func (s *Stats) recordSpawn(kind Kind) {
	n, _ := s.spawned.Get(kind)
	s.spawned.Put(kind, n+1)
}

func (s *Stats) recordLock(lines int) {
	s.locks++
	if lines <= 0 {
		return
	}
	n, _ := s.clears.Get(lines)
	s.clears.Put(lines, n+1)
}

func (s *Stats) recordHold() {
	s.holds++
}

// Spawned returns how many pieces of kind have become active.
func (s *Stats) Spawned(kind Kind) int {
	n, _ := s.spawned.Get(kind)
	return n
}

// Clears returns how many locks cleared exactly lines rows.
func (s *Stats) Clears(lines int) int {
	n, _ := s.clears.Get(lines)
	return n
}

func (s *Stats) Locks() int { return s.locks }

func (s *Stats) Holds() int { return s.holds }

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.spawned.Clear()
	s.clears.Clear()
	s.locks = 0
	s.holds = 0
}

// StatsView is a plain copy of Stats for snapshots.
type StatsView struct {
	Spawned [KindCount]int // indexed by Kind-1
	Clears  [4]int         // indexed by lines-1
	Locks   int
	Holds   int
}

func (s *Stats) view() StatsView {
	v := StatsView{Locks: s.locks, Holds: s.holds}
	for i, k := range Kinds {
		v.Spawned[i] = s.Spawned(k)
	}
	for i := range v.Clears {
		v.Clears[i] = s.Clears(i + 1)
	}
	return v
}

// SpawnedOf returns the spawn count for kind.
func (v StatsView) SpawnedOf(kind Kind) int {
	if !kind.Valid() {
		return 0
	}
	return v.Spawned[kind-1]
}
