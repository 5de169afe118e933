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

// Package easyterm is a wrapper for posix terminals. It allows the terminal
// to be put into cbreak mode, where key presses are available immediately
// and are not echoed, and returned to the mode it was in when the Terminal
// was opened.
package easyterm

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/jetsetilly/ubot/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Sentinal errors.
const (
	MissingFile  = "easyterm: terminal requires an %s file"
	TermiosError = "easyterm: %v"
)

// List of ASCII codes for non-alphanumeric characters.
const (
	KeyInterrupt = 3
	KeyTab       = 9
	KeyCarriage  = 13
	KeyEsc       = 27
	KeyBackspace = 127
)

// List of ASCII codes that can follow KeyEsc.
const (
	EscCursor = 91
)

// List of ASCII codes for characters that can follow EscCursor.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File
	reader *bufio.Reader

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	mu sync.Mutex
}

// Open the terminal. The mode of the input file at the time of opening is
// restored by CanonicalMode().
func Open(inputFile, outputFile *os.File) (*Terminal, error) {
	if inputFile == nil {
		return nil, curated.Errorf(MissingFile, "input")
	}
	if outputFile == nil {
		return nil, curated.Errorf(MissingFile, "output")
	}

	pt := &Terminal{
		input:  inputFile,
		output: outputFile,
		reader: bufio.NewReader(inputFile),
	}

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, curated.Errorf(TermiosError, err)
	}

	// cbreak mode is derived from the current mode
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return pt, nil
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// Flush discards any input that has not been read and any output that has
// not been transmitted.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf(TermiosError, err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf(TermiosError, err)
	}
	return nil
}

// ReadRune implements the io.RuneReader interface.
func (pt *Terminal) ReadRune() (rune, int, error) {
	return pt.reader.ReadRune()
}
