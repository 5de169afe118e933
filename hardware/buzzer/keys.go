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
	"math"

	"github.com/jetsetilly/ubot/curated"
)

// Key names a feedback beep.
type Key string

// List of feedback beeps.
const (
	Processed     Key = "beepProcessed"
	Attention     Key = "beepAttention"
	Started       Key = "beepStarted"
	InputNeeded   Key = "beepInputNeeded"
	Completed     Key = "beepCompleted"
	Undone        Key = "beepUndone"
	Deleted       Key = "beepDeleted"
	InAndDecrease Key = "beepInAndDecrease"
	Boundary      Key = "beepBoundary"
	TooLong       Key = "beepTooLong"
	Added         Key = "beepAdded"
	Loaded        Key = "beepLoaded"
	End           Key = "beepEnd"
)

// Volume used for feedback beeps.
const Volume = 100

// Tone is one element of a beep. A Note of zero is a rest of Duration
// milliseconds.
type Tone struct {
	Note     int
	Duration int
	Rest     int
	Count    int
}

func rest(ms int) Tone {
	return Tone{Duration: ms}
}

var tones = map[Key][]Tone{
	Processed:     {{64, 100, 0, 1}},
	Attention:     {{60, 100, 25, 1}, {64, 100, 25, 1}, {71, 100, 25, 1}, rest(500)},
	Started:       {{60, 300, 50, 1}, {71, 100, 50, 1}},
	InputNeeded:   {{71, 100, 50, 2}, {64, 100, 50, 1}},
	Completed:     {{71, 300, 50, 1}, {60, 100, 50, 1}},
	Undone:        {{71, 100, 25, 2}, rest(200)},
	Deleted:       {{71, 100, 25, 3}, {60, 500, 100, 1}},
	InAndDecrease: {{71, 100, 0, 1}},
	Boundary:      {{60, 500, 150, 3}},
	TooLong:       {{64, 1500, 100, 2}},
	Added:         {{71, 500, 50, 1}, {64, 300, 50, 1}, {60, 100, 50, 1}},
	Loaded:        {{60, 500, 50, 1}, {64, 300, 50, 1}, {71, 100, 50, 1}},
	End:           {{60, 100, 25, 1}, {64, 100, 25, 1}, {67, 100, 25, 1}, {72, 400, 50, 1}},
}

// UnknownKey is returned by KeyBeep() for keys that have no tones and no
// registered sample.
const UnknownKey = "buzzer: unknown key (%s)"

// Known returns true if the key can be played by KeyBeep().
func Known(key Key) bool {
	if _, ok := tones[key]; ok {
		return true
	}
	_, ok := lookupSample(key)
	return ok
}

// Tones returns a copy of the tone sequence for the key.
func Tones(key Key) ([]Tone, bool) {
	t, ok := tones[key]
	if !ok {
		return nil, false
	}
	return append([]Tone(nil), t...), true
}

// NoteFrequency converts a MIDI note number to a frequency in Hz.
func NoteFrequency(note int) int {
	return int(math.Round(440.0 * math.Pow(2, float64(note-69)/12.0)))
}

// KeyBeep plays the named beep. A registered sample is preferred over the
// tone sequence if the buzzer is a SamplePlayer.
func KeyBeep(bz Buzzer, key Key) error {
	if a, ok := bz.(Annotator); ok {
		a.Annotate(key)
	}

	if s, ok := lookupSample(key); ok {
		if sp, ok := bz.(SamplePlayer); ok {
			return sp.PlaySample(s)
		}
	}

	seq, ok := Tones(key)
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}

	for _, t := range seq {
		if t.Note == 0 {
			if err := bz.Rest(t.Duration); err != nil {
				return curated.Errorf("buzzer: %v", err)
			}
			continue
		}
		if err := MidiBeep(bz, t.Note, t.Duration, t.Rest, t.Count); err != nil {
			return err
		}
	}

	return nil
}

// MidiBeep plays the MIDI note count times with a rest after each.
func MidiBeep(bz Buzzer, note int, durationMs int, restMs int, count int) error {
	freq := NoteFrequency(note)

	if restMs == 0 {
		if err := bz.PlayTone(freq, durationMs, Volume, count); err != nil {
			return curated.Errorf("buzzer: %v", err)
		}
		return nil
	}

	for range count {
		if err := bz.PlayTone(freq, durationMs, Volume, 1); err != nil {
			return curated.Errorf("buzzer: %v", err)
		}
		if err := bz.Rest(restMs); err != nil {
			return curated.Errorf("buzzer: %v", err)
		}
	}

	return nil
}
