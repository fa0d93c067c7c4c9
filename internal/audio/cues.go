// Package audio plays short synthesized cues for match events.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

const sampleRate = beep.SampleRate(44100)

// Cue lengths.
const (
	paddleCue = 60 * time.Millisecond
	wallCue   = 40 * time.Millisecond
	pointCue  = 220 * time.Millisecond
	matchCue  = 600 * time.Millisecond
)

// Streamer returns the cue for an event, or nil for events without one.
func Streamer(e pong.Event, rate beep.SampleRate) beep.Streamer {
	switch e.(type) {
	case pong.PaddleHit:
		return NewEnvelope(NewTone(660, paddleCue, WaveSquare, rate), paddleCue, 5*time.Millisecond, 30*time.Millisecond, rate)
	case pong.WallBounce:
		return NewEnvelope(NewTone(330, wallCue, WaveSine, rate), wallCue, 2*time.Millisecond, 20*time.Millisecond, rate)
	case pong.PointScored:
		return NewEnvelope(NewTone(220, pointCue, WaveSaw, rate), pointCue, 10*time.Millisecond, 120*time.Millisecond, rate)
	case pong.MatchWon:
		return NewEnvelope(NewSweep(440, 880, matchCue, WaveSine, rate), matchCue, 20*time.Millisecond, 200*time.Millisecond, rate)
	default:
		return nil
	}
}

// Cues implements pong.Listener by playing a cue per event. Events arriving
// before Init succeeds are ignored.
type Cues struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	gain   float64
	ready  bool
	logger *log.Logger
}

// NewCues creates a cue player with a linear gain in [0, 1].
func NewCues(gain float64, logger *log.Logger) *Cues {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Cues{
		mixer:  &beep.Mixer{},
		gain:   gain,
		logger: logger,
	}
}

// Init opens the audio device.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.ready = true
	c.logger.Debug("audio ready", "rate", int(sampleRate))
	return nil
}

// HandleEvent queues the cue for e.
func (c *Cues) HandleEvent(e pong.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return
	}
	s := Streamer(e, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	c.mixer.Add(withVolume(s, c.gain))
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.ready = false
}
