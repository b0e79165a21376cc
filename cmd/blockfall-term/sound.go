package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	cueLength  = 80 * time.Millisecond
)

// Sound plays short sine cues. A Sound that failed to initialize is silent.
type Sound struct {
	ready bool
}

// NewSound opens the speaker. Failure is not fatal; the game runs muted.
func NewSound(muted bool) (*Sound, error) {
	if muted {
		return &Sound{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Sound{}, err
	}
	return &Sound{ready: true}, nil
}

// toneFor maps a clear size to a pitch: bigger clears ring higher.
func toneFor(lines int) float64 {
	switch {
	case lines >= 4:
		return 1320
	case lines == 3:
		return 1100
	case lines == 2:
		return 990
	default:
		return 880
	}
}

// Clear plays the line-clear cue.
func (s *Sound) Clear(lines int) {
	s.play(toneFor(lines), cueLength*time.Duration(min(max(lines, 1), 4)))
}

// GameOver plays a low cue.
func (s *Sound) GameOver() {
	s.play(220, 300*time.Millisecond)
}

func (s *Sound) play(freq float64, d time.Duration) {
	if !s.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (s *Sound) Close() {
	if s.ready {
		speaker.Close()
		s.ready = false
	}
}
