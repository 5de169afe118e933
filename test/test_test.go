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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/ubot/test"
)

func TestExpect(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectInequality(t, 11, 5+5)
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(6)
	test.DemandSuccess(t, err)

	fmt.Fprint(r, "abc")
	test.ExpectEquality(t, r.String(), "abc")

	fmt.Fprint(r, "def")
	test.ExpectEquality(t, r.String(), "abcdef")

	fmt.Fprint(r, "gh")
	test.ExpectEquality(t, r.String(), "cdefgh")

	r.Reset()
	fmt.Fprint(r, "0123456789")
	test.ExpectEquality(t, r.String(), "456789")

	_, err = test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	fmt.Fprint(tw, "hello")
	test.ExpectSuccess(t, tw.Compare("hello"))
	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
