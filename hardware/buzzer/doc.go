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

// Package buzzer defines the audio feedback surface of the robot. The
// interpreter uses named feedback beeps (see the Key type) to tell the author
// what happened to a button press. Beeps are sequences of tones defined by
// MIDI note numbers.
//
// Any implementation of the Buzzer interface can be used. Implementations
// that also implement SamplePlayer can replace a named beep with a sample
// loaded from a WAV or MP3 file. See RegisterSample().
//
// The Journal type records calls and is used for testing. The Synth type
// renders tones to PCM data, suitable for wavwriter.
package buzzer
