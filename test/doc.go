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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess() and ExpectFailure() functions test for "success" or
// "failure" of a value. A bool value of true is a success and false is a
// failure. An error value of nil is a success and a non-nil error is a
// failure. An untyped nil is always a success.
//
// ExpectEquality() and ExpectInequality() compare like-typed comparable
// values. The Demand*() variants stop the test immediately on failure.
//
// The CompareWriter type implements the io.Writer interface and is useful for
// capturing output and comparing it with an expected string. RingWriter
// retains only the most recent output.
package test
