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

// Package turtlehat reads the buttons of the robot's control board.
//
// The ten buttons are connected to the outputs of a decade counter. The
// counter is advanced by pulsing its clock line and all buttons share a
// single input line. The input line is high only if the button at the
// current counter position is pressed. A full sweep of the counter produces a
// ten bit code with a bit for each pressed button.
//
// Sweeps are noisy. The HAT type keeps a short history of sweeps and only
// reports a code once it has been seen often enough, and not too many other
// codes have been seen in the meantime. Held buttons are reported once and
// then, after a delay, repeatedly.
//
// The Poller type sweeps the board periodically and delivers validated codes
// to a Sink.
package turtlehat
