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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/ubot/curated"
	"github.com/jetsetilly/ubot/prefs"
	"github.com/jetsetilly/ubot/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	// duplicate keys are not allowed
	test.ExpectSuccess(t, curated.Is(dsk.Add("test", &x), prefs.DuplicateKey))
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))
	test.ExpectFailure(t, w.Set("foo"))
	test.ExpectFailure(t, w.Set(1.5))
	test.ExpectEquality(t, w.Value(), 99)

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Value(), 5)
}

// values written by one Disk instance are preserved by a second Disk
// instance that knows nothing about them.
func TestUnknownKeysPreserved(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("bool", &b))
	test.ExpectSuccess(t, b.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("str", &s))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectSuccess(t, s.Set("hello world"))
	test.DemandSuccess(t, dsk.Save())

	cmpFile(t, fn, "bool :: true\nstr :: hello world\n")
}

func TestLoadAndCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	err := os.WriteFile(fn, []byte(fmt.Sprintf("%s\nturtle.pressLength :: 7\nturtle.maxError :: 2\nturtle.clockPin :: 13\n", prefs.WarningBoilerPlate)), 0o600)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var pl prefs.Int
	var me prefs.Int
	test.ExpectSuccess(t, dsk.Add("turtle.pressLength", &pl))
	test.ExpectSuccess(t, dsk.Add("turtle.maxError", &me))

	prefs.PushCommandLineStack("turtle.maxError::4; unused::1")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, pl.Value(), 7)
	test.ExpectEquality(t, me.Value(), 4)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// defunct keys are dropped on save
	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "turtle.maxError :: 4\nturtle.pressLength :: 7\n")
}

func TestMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "missing"))
	test.DemandSuccess(t, err)
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(3))
	test.ExpectSuccess(t, dsk.Add("v", &v))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Value(), 3)
}
