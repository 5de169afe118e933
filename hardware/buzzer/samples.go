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
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/ubot/curated"
	"github.com/jetsetilly/ubot/logger"
)

// Sample is mono 16 bit PCM data. Stereo sources are reduced to the left
// channel.
type Sample struct {
	Filename   string
	SampleRate int
	Data       []int16
}

// DurationMs returns the length of the sample in milliseconds.
func (s *Sample) DurationMs() int {
	if s.SampleRate == 0 {
		return 0
	}
	return len(s.Data) * 1000 / s.SampleRate
}

// LoadSample decodes a WAV or MP3 file. The file type is decided by the
// filename extension.
func LoadSample(filename string) (*Sample, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("buzzer: sample: %v", err)
	}
	defer f.Close()

	s := &Sample{
		Filename: filename,
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if !dec.IsValidFile() {
			return nil, curated.Errorf("buzzer: sample: %v", "not a valid wav file")
		}

		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return nil, curated.Errorf("buzzer: sample: %v", err)
		}

		// bring samples to 16 bits
		shift := buf.SourceBitDepth - 16

		chans := int(dec.NumChans)
		if chans < 1 {
			chans = 1
		}

		s.Data = make([]int16, 0, len(buf.Data)/chans)
		for i := 0; i < len(buf.Data); i += chans {
			v := buf.Data[i]
			switch {
			case shift > 0:
				v >>= shift
			case shift < 0:
				v <<= -shift
			}

			// 8 bit wav data is unsigned
			if buf.SourceBitDepth == 8 {
				v -= 32768
			}

			s.Data = append(s.Data, int16(v))
		}

		s.SampleRate = int(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return nil, curated.Errorf("buzzer: sample: %v", err)
		}

		// the decoded stream is always 16 bit little endian with two
		// channels. we only want the left channel so the index increment is 4
		chunk := make([]byte, 4096)
		for {
			n, err := io.ReadFull(dec, chunk)
			for i := 0; i+1 < n; i += 4 {
				s.Data = append(s.Data, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
			}
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			if err != nil {
				return nil, curated.Errorf("buzzer: sample: %v", err)
			}
		}

		s.SampleRate = dec.SampleRate()

	default:
		return nil, curated.Errorf("buzzer: sample: %v", "unsupported file type")
	}

	logger.Logf(logger.Allow, "buzzer", "loaded sample %s (%dHz, %dms)", filepath.Base(filename), s.SampleRate, s.DurationMs())

	return s, nil
}

var samples = struct {
	crit sync.Mutex
	reg  map[Key]*Sample
}{
	reg: make(map[Key]*Sample),
}

// RegisterSample associates a sample with a key. The sample is used by
// KeyBeep() in place of any tone sequence for the key. A nil sample removes
// the association.
func RegisterSample(key Key, s *Sample) {
	samples.crit.Lock()
	defer samples.crit.Unlock()
	if s == nil {
		delete(samples.reg, key)
		return
	}
	samples.reg[key] = s
}

func lookupSample(key Key) (*Sample, bool) {
	samples.crit.Lock()
	defer samples.crit.Unlock()
	s, ok := samples.reg[key]
	return s, ok
}
