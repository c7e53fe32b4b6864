// Package session holds the per-video playback session: the shared cursor
// that every time-positioned component reads, and the tagging engine that
// anchors new events at the cursor.
package session

// Cursor is the shared "where are we in the video" value. It is a cached
// copy of the transport's last reported state, not an independent clock:
// during playback the cached CurrentTime is a rendering hint only.
type Cursor struct {
	// CurrentTime is the playback position in seconds, >= 0.
	CurrentTime float64
	// Duration is the total video length in seconds, 0 until known.
	Duration float64
	// Playing reports whether the transport is advancing.
	Playing bool
	// Ready is false until the transport has reported a duration.
	Ready bool
}

// Percent maps the cursor position to a 0..1 fraction for rendering.
// Returns 0 while the duration is unknown.
func (c Cursor) Percent() float64 {
	if c.Duration <= 0 {
		return 0
	}
	return c.CurrentTime / c.Duration
}

// TimeAt is the inverse mapping: the time offset for a 0..1 fraction of the
// timeline, clamped to the known duration.
func (c Cursor) TimeAt(frac float64) float64 {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return frac * c.Duration
}

// Transport is the media collaborator the session drives. mpv.Client
// implements it; tests substitute a fake.
type Transport interface {
	TimePos() (float64, error)
	Duration() (float64, error)
	Paused() (bool, error)
	Seek(seconds float64) error
	SetPaused(paused bool) error
}

// Session owns the cursor for one open video. Only two paths write the
// cursor: SyncFromTransport (the transport poll) and Seek (the seek command
// handler). Every other component reads a copy via Snapshot.
type Session struct {
	transport Transport
	cursor    Cursor
}

// New creates a session over the given transport.
func New(transport Transport) *Session {
	return &Session{transport: transport}
}

// Snapshot returns a copy of the current cursor state.
func (s *Session) Snapshot() Cursor {
	return s.cursor
}

// SyncFromTransport polls the transport and refreshes the cached cursor.
// The transport is the sole source of truth during playback; individual
// property failures leave the previous cached value in place so a stalled
// call degrades only that field.
func (s *Session) SyncFromTransport() {
	if pos, err := s.transport.TimePos(); err == nil {
		s.cursor.CurrentTime = pos
	}
	if dur, err := s.transport.Duration(); err == nil {
		s.cursor.Duration = dur
		if dur > 0 {
			s.cursor.Ready = true
		}
	}
	if paused, err := s.transport.Paused(); err == nil {
		s.cursor.Playing = !paused
	}
}

// Seek commands the transport to an absolute position. The protocol is
// two-step: the target is written into the cursor optimistically so
// dependent UI updates without waiting for the next poll, then the
// transport's actual position is read back and overwrites the cache. A seek
// the transport clamped (e.g. past the end of the video) is therefore
// reflected after one round-trip rather than trusted from the optimistic
// write.
func (s *Session) Seek(seconds float64) error {
	if seconds < 0 {
		seconds = 0
	}
	if err := s.transport.Seek(seconds); err != nil {
		return err
	}
	s.cursor.CurrentTime = seconds

	if pos, err := s.transport.TimePos(); err == nil {
		s.cursor.CurrentTime = pos
	}
	return nil
}

// SeekRelative seeks by a signed offset from the cached position.
func (s *Session) SeekRelative(delta float64) error {
	return s.Seek(s.cursor.CurrentTime + delta)
}

// TogglePause flips the transport's pause state and mirrors it in the
// cursor.
func (s *Session) TogglePause() error {
	paused, err := s.transport.Paused()
	if err != nil {
		return err
	}
	if err := s.transport.SetPaused(!paused); err != nil {
		return err
	}
	s.cursor.Playing = paused
	return nil
}
