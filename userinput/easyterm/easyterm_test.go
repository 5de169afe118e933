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


package easyterm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/ubot/curated"
	"github.com/jetsetilly/ubot/test"
	"github.com/jetsetilly/ubot/userinput/easyterm"
)

func TestOpenMissingFile(t *testing.T) {
	_, err := easyterm.Open(nil, os.Stdout)
	test.ExpectSuccess(t, curated.Is(err, easyterm.MissingFile))

	_, err = easyterm.Open(os.Stdin, nil)
	test.ExpectSuccess(t, curated.Is(err, easyterm.MissingFile))
}

func TestOpenNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "notaterminal"))
	test.DemandSuccess(t, err)
	defer f.Close()

	_, err = easyterm.Open(f, f)
	test.ExpectSuccess(t, curated.Is(err, easyterm.TermiosError))
}
