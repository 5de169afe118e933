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


// Package hardware is the base package for the robot's peripherals. The
// sub-packages each model one part of the robot:
//
//	turtlehat	the button board and its debouncer
//	motor		the drive motors
//	buzzer		the piezo buzzer and the feedback beeps
//
// Every peripheral has an interface, a simulation suitable for interactive
// use and a journal that records calls for use in tests.
package hardware
