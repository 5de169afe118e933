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

// Package turtle is the interpreter of the robot. Button codes are turned
// into a byte program (see the bytecode package) and the program is played
// back on the motor.
//
// Authoring is modal. The meaning of a button depends on the current mapping,
// which changes as blocks are opened and closed. There are four mappings:
//
//	default       top level
//	loop begin    inside the body of a loop
//	loop counter  setting the number of times a loop repeats
//	function      inside the body of a function definition
//
// Presses are handled by Press(). The Start/Stop button does not play the
// program directly. Instead a snapshot of the program is handed to Serve(),
// which should be running in its own goroutine. While a program is being
// played any press stops it.
//
// Authoring state is only ever touched by Press() and playback only uses the
// snapshot, so the two do not need to be synchronised. Press() should not be
// called from more than one goroutine at once.
package turtle
