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
	"errors"
	"io"
	"sync"
	"time"

	"github.com/jetsetilly/ubot/hardware/turtlehat"
	"github.com/jetsetilly/ubot/userinput/easyterm"
)

// Holder is implemented by types that can have buttons held down.
type Holder interface {
	Hold(code turtlehat.ButtonCode)
}

// Panel holds buttons down in response to key presses.
type Panel struct {
	keymap   Keymap
	holder   Holder
	holdTime time.Duration

	crit    sync.Mutex
	release *time.Timer

	// called for every key that is read. code is NoButton if the key isn't
	// in the keymap
	OnKey func(key string, code turtlehat.ButtonCode)
}

// NewPanel is the preferred method of initialisation for the Panel type. A
// button is held for holdTime after its key is pressed.
func NewPanel(km Keymap, holder Holder, holdTime time.Duration) *Panel {
	return &Panel{
		keymap:   km,
		holder:   holder,
		holdTime: holdTime,
	}
}

// Key holds down the button for the named key. A button that is already held
// is released first. Returns false if the key is not in the keymap.
func (pn *Panel) Key(key string) bool {
	code, ok := pn.keymap[key]
	if pn.OnKey != nil {
		pn.OnKey(key, code)
	}
	if !ok {
		return false
	}

	pn.crit.Lock()
	defer pn.crit.Unlock()

	if pn.release != nil {
		pn.release.Stop()
	}
	pn.holder.Hold(code)
	pn.release = time.AfterFunc(pn.holdTime, func() {
		pn.holder.Hold(turtlehat.NoButton)
	})

	return true
}

// Run reads keys until the reader is exhausted or the quit key (q or ctrl-c)
// is read.
func (pn *Panel) Run(r io.RuneReader) error {
	defer func() {
		pn.crit.Lock()
		defer pn.crit.Unlock()
		if pn.release != nil {
			pn.release.Stop()
		}
		pn.holder.Hold(turtlehat.NoButton)
	}()

	for {
		key, err := readKey(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if key == "q" || key == "Interrupt" {
			return nil
		}

		pn.Key(key)
	}
}

func readKey(r io.RuneReader) (string, error) {
	c, _, err := r.ReadRune()
	if err != nil {
		return "", err
	}

	switch c {
	case easyterm.KeyInterrupt:
		return "Interrupt", nil
	case ' ':
		return "Space", nil
	case easyterm.KeyCarriage, '\n':
		return "Enter", nil
	case easyterm.KeyBackspace, '\b':
		return "Backspace", nil
	case easyterm.KeyTab:
		return "Tab", nil
	case easyterm.KeyEsc:
		c, _, err = r.ReadRune()
		if err != nil {
			return "", err
		}
		if c != easyterm.EscCursor {
			return "Esc", nil
		}
		c, _, err = r.ReadRune()
		if err != nil {
			return "", err
		}
		switch c {
		case easyterm.CursorUp:
			return "Up", nil
		case easyterm.CursorDown:
			return "Down", nil
		case easyterm.CursorForward:
			return "Right", nil
		case easyterm.CursorBackward:
			return "Left", nil
		}
		return "Esc", nil
	}

	return string(c), nil
}
