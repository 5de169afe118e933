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

import (
	"context"
	"time"
)

// Sink receives validated button codes.
type Sink interface {
	Press(code ButtonCode)
}

// Poller validates button codes periodically.
type Poller struct {
	hat    *HAT
	period time.Duration
	sink   Sink
}

// NewPoller is the preferred method of initialisation for the Poller type.
func NewPoller(hat *HAT, period time.Duration, sink Sink) *Poller {
	return &Poller{
		hat:    hat,
		period: period,
		sink:   sink,
	}
}

// Tick performs a single validation and passes any code to the sink.
func (p *Poller) Tick() {
	if code := p.hat.Validated(); code != NoButton {
		p.sink.Press(code)
	}
}

// Run calls Tick() every period until the context is done. Ticks that would
// have happened while a previous tick was still being handled are dropped, so
// the HAT is never used by two ticks at once.
func (p *Poller) Run(ctx context.Context) error {
	tck := time.NewTicker(p.period)
	defer tck.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tck.C:
			p.Tick()
		}
	}
}
