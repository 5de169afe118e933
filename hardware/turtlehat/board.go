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

import "sync"

// Board simulates the control board. It implements both the Clock and Input
// interfaces and is safe to use from more than one goroutine. The buttons
// that are held down are set with Hold().
type Board struct {
	crit     sync.Mutex
	position int
	clock    bool
	held     ButtonCode

	// if Noise is not nil it is called for every reading of the input line.
	// a return value of true inverts the reading
	Noise func(position int) bool
}

// On implements the Clock interface.
func (b *Board) On() {
	b.crit.Lock()
	defer b.crit.Unlock()
	if !b.clock {
		b.position++
		if b.position >= NumButtons {
			b.position = 0
		}
	}
	b.clock = true
}

// Off implements the Clock interface.
func (b *Board) Off() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.clock = false
}

// Value implements the Input interface.
func (b *Board) Value() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	v := b.held&(1<<b.position) != 0
	if b.Noise != nil && b.Noise(b.position) {
		v = !v
	}
	return v
}

// Hold sets the buttons that are held down. NoButton releases all buttons.
func (b *Board) Hold(code ButtonCode) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.held = code
}

// Held returns the buttons that are held down.
func (b *Board) Held() ButtonCode {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.held
}

// Position returns the position of the simulated decade counter.
func (b *Board) Position() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.position
}
