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

import (
	"github.com/jetsetilly/ubot/hardware/buzzer"
	"github.com/jetsetilly/ubot/logger"
)

// enterBlock opens a new block at the pointer. The function argument is the
// function id if the block is a function definition.
func (t *Turtle) enterBlock(mapping *Mapping, function int) {
	t.blocks = append(t.blocks, frame{
		start:    t.blockStart,
		mapping:  t.mapping,
		function: function,
	})
	t.blockStart = t.pointer
	t.mapping = mapping
	t.bz.SetIdleProfile(buzzer.IdleInBlock)
	t.beep(buzzer.Started)

	logger.Logf(t, "turtle", "block opened at %d (%s)", t.blockStart, mapping)
}

// exitBlock closes the innermost block. If discard is true the block is
// removed from the command buffer. Returns false if there is no open block.
func (t *Turtle) exitBlock(discard bool) bool {
	if len(t.blocks) == 0 {
		return false
	}

	if discard {
		t.pointer = t.blockStart
	}

	f := t.blocks[len(t.blocks)-1]
	t.blocks = t.blocks[:len(t.blocks)-1]

	if discard && f.function > 0 {
		t.functions[f.function-1] = FunctionSlot{}
	}

	t.blockStart = f.start
	t.mapping = f.mapping

	if len(t.blocks) == 0 {
		t.bz.SetIdleProfile(buzzer.IdleNormal)
	}

	if discard {
		t.beep(buzzer.Deleted)
		logger.Logf(t, "turtle", "block discarded. mapping is %s", t.mapping)
	} else {
		t.beep(buzzer.Completed)
		logger.Logf(t, "turtle", "block closed. mapping is %s", t.mapping)
	}

	return true
}

// the function id of the innermost block. zero if the block is not a
// function definition or if there is no open block
func (t *Turtle) innermostFunction() int {
	if len(t.blocks) == 0 {
		return 0
	}
	return t.blocks[len(t.blocks)-1].function
}
