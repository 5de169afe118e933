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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/ubot/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while the robot is running ***"

// Sentinal errors.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	FileError    = "prefs: %v"
	BadLine      = "prefs: bad line (%d) in %s"
)

// the separator between key and value in the preferences file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// entries loaded from the file that have not been added to this disk
	// instance. preserved on save
	unknown map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		unknown: make(map[string]string),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Add preference value to list of values to store/load from Disk.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Load preference values from disk. A missing file is not an error; values
// keep their current settings. Values on the command line stack take priority
// over values in the file.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil && !os.IsNotExist(err) {
		return curated.Errorf(FileError, err)
	}

	if f != nil {
		defer f.Close()

		scanner := bufio.NewScanner(f)
		ln := 0
		for scanner.Scan() {
			ln++
			line := scanner.Text()

			// the first line is the warning boiler plate
			if ln == 1 && line == WarningBoilerPlate {
				continue
			}
			if strings.TrimSpace(line) == "" {
				continue
			}

			kv := strings.SplitN(line, separator, 2)
			if len(kv) != 2 {
				return curated.Errorf(BadLine, ln, dsk.path)
			}

			key := strings.TrimSpace(kv[0])
			if isDefunct(key) {
				continue
			}

			if p, ok := dsk.entries[key]; ok {
				if err := p.Set(kv[1]); err != nil {
					return curated.Errorf(FileError, err)
				}
			} else {
				dsk.unknown[key] = kv[1]
			}
		}

		if err := scanner.Err(); err != nil {
			return curated.Errorf(FileError, err)
		}
	}

	for key, p := range dsk.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(FileError, err)
			}
		}
	}

	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() (rerr error) {
	all := make(map[string]string, len(dsk.entries)+len(dsk.unknown))
	for k, v := range dsk.unknown {
		all[k] = v
	}
	for k, p := range dsk.entries {
		all[k] = p.String()
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf(FileError, err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, all[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(FileError, err)
	}

	return nil
}
