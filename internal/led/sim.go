package led

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// Sim records frames instead of driving hardware. Useful for headless runs
// and tests.
type Sim struct {
	mu     sync.Mutex
	log    zerolog.Logger
	frames [][]byte
	closed bool
}

func NewSim(log zerolog.Logger) *Sim {
	return &Sim{log: log}
}

func (s *Sim) Write(rgb []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("sim closed")
	}
	f := make([]byte, len(rgb))
	copy(f, rgb)
	s.frames = append(s.frames, f)

	lit := 0
	for i := 0; i+2 < len(f); i += 3 {
		if f[i] != 0 || f[i+1] != 0 || f[i+2] != 0 {
			lit++
		}
	}
	s.log.Trace().Int("frame", len(s.frames)).Int("lit", lit).Msg("sim frame")
	return nil
}

// Frames returns every frame written so far, oldest first.
func (s *Sim) Frames() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]byte, len(s.frames))
	copy(out, s.frames)
	return out
}

// Last returns the most recent frame, or nil before the first Write.
func (s *Sim) Last() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

func (s *Sim) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Halt records an all-off frame the size of the last one.
func (s *Sim) Halt() error {
	s.mu.Lock()
	n := 0
	if len(s.frames) > 0 {
		n = len(s.frames[len(s.frames)-1])
	}
	s.mu.Unlock()
	return s.Write(make([]byte, n))
}
