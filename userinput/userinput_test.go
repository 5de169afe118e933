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

package userinput_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/ubot/curated"
	"github.com/jetsetilly/ubot/hardware/turtlehat"
	"github.com/jetsetilly/ubot/test"
	"github.com/jetsetilly/ubot/userinput"
)

func TestDefaultKeymap(t *testing.T) {
	km := userinput.DefaultKeymap()
	test.ExpectEquality(t, km["w"], turtlehat.Forward)
	test.ExpectEquality(t, km["Space"], turtlehat.StartStop)
	test.ExpectEquality(t, km["2"], turtlehat.F2)
	test.ExpectSuccess(t, strings.Contains(km.Help(), "Up, w"))
}

func TestLoadKeymap(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "keymap.toml")
	err := os.WriteFile(fn, []byte(`
[keys]
i = "forward"
w = "none"
"!" = 1023
Tab = "undo"
`), 0o600)
	test.DemandSuccess(t, err)

	km, err := userinput.LoadKeymap(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, km["i"], turtlehat.Forward)
	test.ExpectEquality(t, km["!"], turtlehat.Mapping)
	test.ExpectEquality(t, km["Tab"], turtlehat.Undo)
	_, ok := km["w"]
	test.ExpectFailure(t, ok)

	// unchanged entries
	test.ExpectEquality(t, km["Up"], turtlehat.Forward)

	err = os.WriteFile(fn, []byte("[keys]\nPageUp = \"forward\"\n"), 0o600)
	test.DemandSuccess(t, err)
	_, err = userinput.LoadKeymap(fn)
	test.ExpectSuccess(t, curated.Is(err, userinput.BadKey))

	err = os.WriteFile(fn, []byte("[keys]\nw = \"jump\"\n"), 0o600)
	test.DemandSuccess(t, err)
	_, err = userinput.LoadKeymap(fn)
	test.ExpectSuccess(t, curated.Is(err, userinput.KeymapFile))

	_, err = userinput.LoadKeymap(filepath.Join(t.TempDir(), "missing.toml"))
	test.ExpectFailure(t, err)
}

type holder struct {
	crit  sync.Mutex
	codes []turtlehat.ButtonCode
}

func (h *holder) Hold(code turtlehat.ButtonCode) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.codes = append(h.codes, code)
}

func (h *holder) get() []turtlehat.ButtonCode {
	h.crit.Lock()
	defer h.crit.Unlock()
	return append([]turtlehat.ButtonCode(nil), h.codes...)
}

func TestPanel(t *testing.T) {
	var h holder
	pn := userinput.NewPanel(userinput.DefaultKeymap(), &h, time.Hour)

	var keys []string
	pn.OnKey = func(key string, _ turtlehat.ButtonCode) {
		keys = append(keys, key)
	}

	err := pn.Run(strings.NewReader("w\x1b[D z\x7fq+"))
	test.ExpectSuccess(t, err)

	test.DemandEquality(t, len(keys), 5)
	test.ExpectEquality(t, keys[1], "Left")
	test.ExpectEquality(t, keys[2], "Space")
	test.ExpectEquality(t, keys[3], "z")
	test.ExpectEquality(t, keys[4], "Backspace")

	// unmapped keys don't hold a button. running ends with all buttons
	// released
	codes := h.get()
	expected := []turtlehat.ButtonCode{turtlehat.Forward, turtlehat.Left, turtlehat.StartStop, turtlehat.Undo, turtlehat.NoButton}
	test.DemandEquality(t, len(codes), len(expected))
	for i := range expected {
		test.ExpectEquality(t, codes[i], expected[i], i)
	}
}

func TestPanelRelease(t *testing.T) {
	var h holder
	pn := userinput.NewPanel(userinput.DefaultKeymap(), &h, time.Millisecond)
	test.ExpectSuccess(t, pn.Key("d"))
	test.ExpectFailure(t, pn.Key("PageUp"))

	deadline := time.Now().Add(5 * time.Second)
	for len(h.get()) < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	codes := h.get()
	test.DemandEquality(t, len(codes), 2)
	test.ExpectEquality(t, codes[0], turtlehat.Right)
	test.ExpectEquality(t, codes[1], turtlehat.NoButton)
}
