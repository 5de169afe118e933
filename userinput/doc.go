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

// Package userinput turns keyboard input into presses of the robot's
// buttons. It is used when the robot is being simulated.
//
// A Keymap associates key names with button codes. Key names are single
// characters or one of the special names:
//
//	Up Down Left Right Space Enter Backspace Tab
//
// The default keymap can be changed with a TOML file of the form:
//
//	[keys]
//	w = "forward"
//	Up = "forward"
//	"+" = "add"
//	"6" = 6
//
// Buttons are named as in the turtlehat package, or given as a code.
//
// The Panel type reads keys from a terminal and holds the matching buttons
// down on a Holder, such as the simulated turtlehat.Board, for long enough
// for the press to be validated.
package userinput
