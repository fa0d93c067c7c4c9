package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone generates a wave for a fixed duration, gliding linearly from freq to
// endFreq.
type tone struct {
	freq     float64
	endFreq  float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	position int
	duration int
}

// NewTone returns a streamer of a constant-pitch tone.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep returns a streamer whose pitch glides from freq to endFreq.
func NewSweep(freq, endFreq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		endFreq:  endFreq,
		wave:     wave,
		rate:     rate,
		duration: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.position) / float64(t.duration)
		freq := t.freq + (t.endFreq-t.freq)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a stream in over attack and out over its last release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which should last d, with linear attack and release.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = max(float64(remaining)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by a linear gain in [0, 1].
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
