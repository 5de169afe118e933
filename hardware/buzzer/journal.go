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

package buzzer

import (
	"fmt"
	"sync"
)

// Entry is a single call recorded by the Journal.
type Entry struct {
	// the most recently announced named beep. empty if no beep has been
	// announced since the journal was cleared
	Key Key

	// one of "tone", "rest", "idle" or "sample"
	Kind string

	Freq     int
	Duration int
	Volume   int
	Repeat   int
	Profile  IdleProfile
	Sample   *Sample
}

func (e Entry) String() string {
	switch e.Kind {
	case "tone":
		return fmt.Sprintf("tone %dHz %dms x%d", e.Freq, e.Duration, e.Repeat)
	case "rest":
		return fmt.Sprintf("rest %dms", e.Duration)
	case "idle":
		return fmt.Sprintf("idle %s", e.Profile)
	case "sample":
		return fmt.Sprintf("sample %s", e.Sample.Filename)
	}
	return e.Kind
}

// Journal implements the Buzzer, SamplePlayer and Annotator interfaces by
// recording every call. It is safe to use from more than one goroutine.
type Journal struct {
	crit    sync.Mutex
	entries []Entry
	keys    []Key
	key     Key
	profile IdleProfile

	// if Fail is not nil then it is returned by every PlayTone() and Rest()
	// call. the call is still recorded
	Fail error
}

func (j *Journal) record(e Entry) error {
	j.crit.Lock()
	defer j.crit.Unlock()
	e.Key = j.key
	j.entries = append(j.entries, e)
	if e.Kind == "idle" || e.Kind == "sample" {
		return nil
	}
	return j.Fail
}

// PlayTone implements the Buzzer interface.
func (j *Journal) PlayTone(freq int, durationMs int, volume int, repeat int) error {
	return j.record(Entry{Kind: "tone", Freq: freq, Duration: durationMs, Volume: volume, Repeat: repeat})
}

// Rest implements the Buzzer interface.
func (j *Journal) Rest(durationMs int) error {
	return j.record(Entry{Kind: "rest", Duration: durationMs})
}

// SetIdleProfile implements the Buzzer interface.
func (j *Journal) SetIdleProfile(profile IdleProfile) {
	j.record(Entry{Kind: "idle", Profile: profile})
	j.crit.Lock()
	j.profile = profile
	j.crit.Unlock()
}

// PlaySample implements the SamplePlayer interface.
func (j *Journal) PlaySample(s *Sample) error {
	return j.record(Entry{Kind: "sample", Sample: s})
}

// Annotate implements the Annotator interface.
func (j *Journal) Annotate(key Key) {
	j.crit.Lock()
	defer j.crit.Unlock()
	j.key = key
	j.keys = append(j.keys, key)
}

// Keys returns the named beeps played so far, in order.
func (j *Journal) Keys() []Key {
	j.crit.Lock()
	defer j.crit.Unlock()
	return append([]Key(nil), j.keys...)
}

// Entries returns a copy of the recorded calls.
func (j *Journal) Entries() []Entry {
	j.crit.Lock()
	defer j.crit.Unlock()
	return append([]Entry(nil), j.entries...)
}

// Profile returns the most recent idle profile.
func (j *Journal) Profile() IdleProfile {
	j.crit.Lock()
	defer j.crit.Unlock()
	return j.profile
}

// Clear forgets all recorded calls. The idle profile is not changed.
func (j *Journal) Clear() {
	j.crit.Lock()
	defer j.crit.Unlock()
	j.entries = j.entries[:0]
	j.keys = j.keys[:0]
	j.key = ""
}
