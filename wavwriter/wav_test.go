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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/ubot/test"
	"github.com/jetsetilly/ubot/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	aw.AddSamples([]int{0, 1000, -1000, 40000, -40000})
	test.ExpectEquality(t, aw.Len(), 5)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.SampleRate), wavwriter.SampleRate)
	test.ExpectEquality(t, int(dec.NumChans), 1)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 5)
	test.ExpectEquality(t, buf.Data[1], 1000)
	test.ExpectEquality(t, buf.Data[3], 32767)
	test.ExpectEquality(t, buf.Data[4], -32768)

}

func TestNoFilename(t *testing.T) {
	_, err := wavwriter.New("")
	test.ExpectFailure(t, err)
}
