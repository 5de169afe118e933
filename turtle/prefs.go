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
	"github.com/jetsetilly/ubot/curated"
	"github.com/jetsetilly/ubot/hardware/turtlehat"
	"github.com/jetsetilly/ubot/paths"
	"github.com/jetsetilly/ubot/prefs"
)

// Preferences for the turtle. All durations are in milliseconds.
type Preferences struct {
	dsk *prefs.Disk

	// debouncing of the control board. see turtlehat.Params
	PressLength prefs.Int
	MaxError    prefs.Int
	FirstRepeat prefs.Int

	// when the loop counter is checked during authoring: 0 never plays the
	// count, 1 plays the count if it is 20 or less, 2 always plays the count
	LoopChecking prefs.Int

	MoveLength   prefs.Int
	TurnLength   prefs.Int
	BreathLength prefs.Int

	// feedback beep played when a program runs to completion. empty for no
	// beep
	EndSignal prefs.String

	// period between button checks
	CheckPeriod prefs.Int

	// log interpreter activity
	Log prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty the default preferences file is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.PressLength.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(BadPreference, "turtle.pressLength", v)
		}
		return nil
	})
	p.MaxError.SetHookPre(nonNegative("turtle.maxError"))
	p.FirstRepeat.SetHookPre(nonNegative("turtle.firstRepeat"))
	p.LoopChecking.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) > 2 {
			return curated.Errorf(BadPreference, "turtle.loopChecking", v)
		}
		return nil
	})
	p.MoveLength.SetHookPre(nonNegative("turtle.moveLength"))
	p.TurnLength.SetHookPre(nonNegative("turtle.turnLength"))
	p.BreathLength.SetHookPre(nonNegative("turtle.breathLength"))
	p.CheckPeriod.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(BadPreference, "turtle.checkPeriod", v)
		}
		return nil
	})

	if path == "" {
		var err error
		path, err = paths.ResourcePath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, curated.Errorf("turtle: %v", err)
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		p   prefValue
	}{
		{"turtle.pressLength", &p.PressLength},
		{"turtle.maxError", &p.MaxError},
		{"turtle.firstRepeat", &p.FirstRepeat},
		{"turtle.loopChecking", &p.LoopChecking},
		{"turtle.moveLength", &p.MoveLength},
		{"turtle.turnLength", &p.TurnLength},
		{"turtle.breathLength", &p.BreathLength},
		{"turtle.endSignal", &p.EndSignal},
		{"turtle.checkPeriod", &p.CheckPeriod},
		{"turtle.log", &p.Log},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// the methods required by prefs.Disk.Add()
type prefValue interface {
	String() string
	Set(value prefs.Value) error
	Get() prefs.Value
	Reset() error
}

func nonNegative(key string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(BadPreference, key, v)
		}
		return nil
	}
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.PressLength.Set(5)
	p.MaxError.Set(1)
	p.FirstRepeat.Set(75)
	p.LoopChecking.Set(1)
	p.MoveLength.Set(890)
	p.TurnLength.Set(359)
	p.BreathLength.Set(500)
	p.EndSignal.Set("")
	p.CheckPeriod.Set(20)
	p.Log.Set(true)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// HATParams returns the debouncing preferences in the form required by the
// turtlehat package.
func (p *Preferences) HATParams() turtlehat.Params {
	return turtlehat.Params{
		PressLength: p.PressLength.Value(),
		MaxError:    p.MaxError.Value(),
		FirstRepeat: p.FirstRepeat.Value(),
	}
}
