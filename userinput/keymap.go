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

package userinput

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jetsetilly/ubot/curated"
	"github.com/jetsetilly/ubot/hardware/turtlehat"
)

// Keymap associates key names with button codes.
type Keymap map[string]turtlehat.ButtonCode

// DefaultKeymap returns a new instance of the default keymap.
func DefaultKeymap() Keymap {
	return Keymap{
		"w":         turtlehat.Forward,
		"Up":        turtlehat.Forward,
		"s":         turtlehat.Backward,
		"Down":      turtlehat.Backward,
		"a":         turtlehat.Left,
		"Left":      turtlehat.Left,
		"d":         turtlehat.Right,
		"Right":     turtlehat.Right,
		"p":         turtlehat.Pause,
		"r":         turtlehat.Repeat,
		"1":         turtlehat.F1,
		"2":         turtlehat.F2,
		"3":         turtlehat.F3,
		"+":         turtlehat.Add,
		"Enter":     turtlehat.Add,
		"Space":     turtlehat.StartStop,
		"u":         turtlehat.Undo,
		"Backspace": turtlehat.Undo,
		"x":         turtlehat.Delete,
		"m":         turtlehat.Mapping,
	}
}

// Sentinel errors.
const (
	KeymapFile = "userinput: keymap: %v"
	BadKey     = "userinput: keymap: bad key name (%s)"
)

var specialKeys = []string{"Up", "Down", "Left", "Right", "Space", "Enter", "Backspace", "Tab"}

type keymapFile struct {
	Keys map[string]any `toml:"keys"`
}

// LoadKeymap reads a TOML keymap file. Keys in the file replace or add to the
// entries in the default keymap. A key given the value "none" is removed.
func LoadKeymap(filename string) (Keymap, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(KeymapFile, err)
	}

	var f keymapFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, curated.Errorf(KeymapFile, err)
	}

	km := DefaultKeymap()
	for k, v := range f.Keys {
		if len([]rune(k)) != 1 && !isSpecial(k) {
			return nil, curated.Errorf(BadKey, k)
		}

		code, err := turtlehat.ParseButtonCode(fmt.Sprintf("%v", v))
		if err != nil {
			return nil, curated.Errorf(KeymapFile, err)
		}

		if code == turtlehat.NoButton {
			delete(km, k)
		} else {
			km[k] = code
		}
	}

	return km, nil
}

func isSpecial(k string) bool {
	for _, s := range specialKeys {
		if s == k {
			return true
		}
	}
	return false
}

// Help returns a description of the keymap, one button per line.
func (km Keymap) Help() string {
	byCode := make(map[turtlehat.ButtonCode][]string)
	for k, c := range km {
		byCode[c] = append(byCode[c], k)
	}

	codes := make([]turtlehat.ButtonCode, 0, len(byCode))
	for c := range byCode {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	s := strings.Builder{}
	for _, c := range codes {
		keys := byCode[c]
		sort.Strings(keys)
		s.WriteString(fmt.Sprintf("%-12s %s\n", c, strings.Join(keys, ", ")))
	}
	return s.String()
}
