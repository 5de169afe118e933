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

// Package logger is the central log for the robot. Entries are made up of a
// tag and a detail string. Consecutive identical entries are folded into one
// entry with a repeat count.
//
// The log is not intended for error reporting to the author of a program.
// The robot has no display and any feedback is audible. Instead the log
// records what happened to actuators, executions and so on, so that it can be
// inspected from a terminal or echoed as it happens.
//
// Whether an entry is recorded is gated by the Permission interface. The
// Allow value always permits logging.
package logger
