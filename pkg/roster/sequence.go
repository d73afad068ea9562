// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package roster

import (
	"sync"
	"time"
)

// Sequence hands out profile ids derived from wall-clock milliseconds. Ids
// strictly increase even when the clock stalls or steps backwards.
type Sequence struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewSequence returns a Sequence reading the given clock, or time.Now when
// clock is nil.
func NewSequence(clock func() time.Time) *Sequence {
	if clock == nil {
		clock = time.Now
	}
	return &Sequence{now: clock}
}

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
