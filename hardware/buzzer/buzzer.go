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

// IdleProfile selects the sound the buzzer makes, if any, while there is
// nothing else to play.
type IdleProfile int

// List of valid IdleProfile values.
const (
	IdleNormal IdleProfile = iota
	IdleInBlock
)

func (p IdleProfile) String() string {
	switch p {
	case IdleNormal:
		return "normal"
	case IdleInBlock:
		return "in block"
	}
	return "unknown"
}

// Buzzer is the interface to the sound hardware. Calls block for the duration
// of the sound.
type Buzzer interface {
	// play a tone of the given frequency repeat times. volume is a
	// percentage
	PlayTone(freq int, durationMs int, volume int, repeat int) error

	// silence for the duration
	Rest(durationMs int) error

	SetIdleProfile(profile IdleProfile)
}

// SamplePlayer is implemented by buzzers that can play PCM samples.
type SamplePlayer interface {
	PlaySample(s *Sample) error
}

// Annotator is implemented by buzzers that want to know which named beep the
// following calls are part of.
type Annotator interface {
	Annotate(key Key)
}
