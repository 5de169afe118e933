// This file is part of uBot.
//
// uBot is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uBot is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uBot.  If not, see <https://www.gnu.org/licenses/>.

package buzzer

import (
	"sync"
	"time"

	"github.com/jetsetilly/ubot/logger"
	"github.com/jetsetilly/ubot/wavwriter"
)

// Mixer receives PCM data rendered by Synth. The wavwriter.WavWriter type
// satisfies the interface.
type Mixer interface {
	AddSamples(samples []int)
}

// amplitude of a tone at full volume
const amplitude = 8000

// Synth implements the Buzzer, SamplePlayer and Annotator interfaces by
// rendering square waves at wavwriter.SampleRate.
type Synth struct {
	mixer Mixer

	// sleep for the duration of every sound
	realtime bool

	crit    sync.Mutex
	profile IdleProfile
}

// NewSynth is the preferred method of initialisation for the Synth type. The
// mixer can be nil.
func NewSynth(mixer Mixer, realtime bool) *Synth {
	return &Synth{
		mixer:    mixer,
		realtime: realtime,
	}
}

func samplesForMs(ms int) int {
	return wavwriter.SampleRate * ms / 1000
}

func (syn *Synth) wait(ms int) {
	if syn.realtime && ms > 0 {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	}
}

// PlayTone implements the Buzzer interface.
func (syn *Synth) PlayTone(freq int, durationMs int, volume int, repeat int) error {
	if syn.mixer != nil && freq > 0 {
		n := samplesForMs(durationMs)
		half := wavwriter.SampleRate / (freq * 2)
		if half < 1 {
			half = 1
		}
		amp := amplitude * volume / 100

		buf := make([]int, n)
		for i := range buf {
			if (i/half)%2 == 0 {
				buf[i] = amp
			} else {
				buf[i] = -amp
			}
		}
		for range repeat {
			syn.mixer.AddSamples(buf)
		}
	}
	syn.wait(durationMs * repeat)
	return nil
}

// Rest implements the Buzzer interface.
func (syn *Synth) Rest(durationMs int) error {
	if syn.mixer != nil {
		syn.mixer.AddSamples(make([]int, samplesForMs(durationMs)))
	}
	syn.wait(durationMs)
	return nil
}

// SetIdleProfile implements the Buzzer interface.
func (syn *Synth) SetIdleProfile(profile IdleProfile) {
	syn.crit.Lock()
	defer syn.crit.Unlock()
	if profile != syn.profile {
		logger.Logf(logger.Allow, "buzzer", "idle profile: %s", profile)
	}
	syn.profile = profile
}

// PlaySample implements the SamplePlayer interface. The sample is resampled
// to wavwriter.SampleRate.
func (syn *Synth) PlaySample(s *Sample) error {
	if syn.mixer != nil && s.SampleRate > 0 {
		n := len(s.Data) * wavwriter.SampleRate / s.SampleRate
		buf := make([]int, n)
		for i := range buf {
			buf[i] = int(s.Data[i*s.SampleRate/wavwriter.SampleRate])
		}
		syn.mixer.AddSamples(buf)
	}
	syn.wait(s.DurationMs())
	return nil
}

// Annotate implements the Annotator interface.
func (syn *Synth) Annotate(key Key) {
	logger.Logf(logger.Allow, "buzzer", "%s", key)
}
