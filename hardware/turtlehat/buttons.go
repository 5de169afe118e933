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

package turtlehat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/ubot/curated"
)

// ButtonCode is the code produced by a sweep of the board. Single buttons set
// a single bit and chords set more than one.
type ButtonCode uint16

// List of button codes. F1, F2 and F3 are chords of two buttons.
const (
	NoButton  ButtonCode = 0
	Forward   ButtonCode = 1
	Pause     ButtonCode = 2
	Repeat    ButtonCode = 4
	F1        ButtonCode = 6
	Add       ButtonCode = 8
	F2        ButtonCode = 10
	F3        ButtonCode = 12
	Right     ButtonCode = 16
	Backward  ButtonCode = 32
	StartStop ButtonCode = 64
	Left      ButtonCode = 128
	Undo      ButtonCode = 256
	Delete    ButtonCode = 512

	// all buttons pressed at once
	Mapping ButtonCode = 1023
)

// NumButtons is the number of counter positions with a button.
const NumButtons = 10

var names = map[ButtonCode]string{
	NoButton:  "none",
	Forward:   "forward",
	Pause:     "pause",
	Repeat:    "repeat",
	F1:        "F1",
	Add:       "add",
	F2:        "F2",
	F3:        "F3",
	Right:     "right",
	Backward:  "backward",
	StartStop: "start/stop",
	Left:      "left",
	Undo:      "undo",
	Delete:    "delete",
	Mapping:   "mapping",
}

func (c ButtonCode) String() string {
	if s, ok := names[c]; ok {
		return s
	}

	var s strings.Builder
	for i := 0; i < NumButtons; i++ {
		b := ButtonCode(1 << i)
		if c&b == b {
			if s.Len() > 0 {
				s.WriteString("+")
			}
			s.WriteString(names[b])
		}
	}
	if c>>NumButtons != 0 {
		return fmt.Sprintf("invalid(%d)", int(c))
	}
	return s.String()
}

// ParseButtonCode returns the code for a button name or a number.
func ParseButtonCode(s string) (ButtonCode, error) {
	s = strings.TrimSpace(s)
	for c, n := range names {
		if strings.EqualFold(n, s) {
			return c, nil
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return NoButton, curated.Errorf("turtlehat: unrecognised button (%s)", s)
	}
	if v < 0 || v > int(Mapping) {
		return NoButton, curated.Errorf("turtlehat: button code out of range (%d)", v)
	}
	return ButtonCode(v), nil
}
