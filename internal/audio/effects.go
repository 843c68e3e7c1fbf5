// internal/audio/effects.go
package audio

import (
	"math"
	"time"

	"go-reef-survivors/internal/utils"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType — форма волны осциллятора.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator генерирует волну заданной частоты и длительности.
// slide — изменение частоты в Гц за секунду (для «вжух» и «бульк»).
type oscillator struct {
	freq     float64
	slide    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *utils.PRNGService
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newSlide(freq, 0, duration, wave, rate)
}

func newSlide(freq, slide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	o := &oscillator{
		freq:     freq,
		slide:    slide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	if wave == WaveNoise {
		o.noise = utils.NewPRNGService(int64(freq*1000) + 1)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.slide*float64(o.position)/float64(o.rate)
		if freq < 0 {
			freq = 0
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope — упрощённая огибающая: атака, сустейн, затухание.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume — громкость в линейной шкале. math.Log2(0) = -Inf, поэтому 0 — тишина.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone — одна нота с огибающей.
func tone(freq, slide float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(newSlide(freq, slide, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Synthesize собирает звук для сигнала. Неизвестный сигнал — nil.
func Synthesize(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueEnemyHit:
		return newVolume(tone(220, -600, 60*time.Millisecond, WaveSquare, rate), 0.25)
	case CueEnemyDeath:
		return beep.Mix(
			newVolume(tone(160, -300, 180*time.Millisecond, WaveSaw, rate), 0.3),
			newVolume(tone(1, 0, 120*time.Millisecond, WaveNoise, rate), 0.15),
		)
	case CuePickUpExp:
		return newVolume(tone(990, 800, 70*time.Millisecond, WaveSine, rate), 0.3)
	case CuePickUpMoney:
		return beep.Seq(
			newVolume(tone(1319, 0, 60*time.Millisecond, WaveSine, rate), 0.35),
			newVolume(tone(1760, 0, 120*time.Millisecond, WaveSine, rate), 0.35),
		)
	case CuePickUpHeal:
		return newVolume(tone(523, 300, 250*time.Millisecond, WaveSine, rate), 0.35)
	case CueSharkBite:
		return beep.Mix(
			newVolume(tone(90, -120, 150*time.Millisecond, WaveSquare, rate), 0.3),
			newVolume(tone(2, 0, 90*time.Millisecond, WaveNoise, rate), 0.2),
		)
	case CueSummonCompanion:
		return beep.Seq(
			newVolume(tone(392, 0, 90*time.Millisecond, WaveSine, rate), 0.3),
			newVolume(tone(523, 0, 90*time.Millisecond, WaveSine, rate), 0.3),
			newVolume(tone(659, 0, 160*time.Millisecond, WaveSine, rate), 0.3),
		)
	case CueLevelUp:
		return beep.Seq(
			newVolume(tone(523, 0, 100*time.Millisecond, WaveSquare, rate), 0.2),
			newVolume(tone(659, 0, 100*time.Millisecond, WaveSquare, rate), 0.2),
			newVolume(tone(784, 0, 100*time.Millisecond, WaveSquare, rate), 0.2),
			newVolume(tone(1047, 0, 220*time.Millisecond, WaveSquare, rate), 0.2),
		)
	}
	return nil
}
