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

package turtle

// Sentinel errors.
const (
	BadPreference     = "turtle: bad value for %s (%v)"
	MalformedProgram  = "turtle: malformed program: %s at offset %d"
	UndefinedFunction = "turtle: undefined function F%d at offset %d"
	Busy              = "turtle: busy"
)
