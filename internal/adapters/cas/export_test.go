package cas

import "time"

// SetClock replaces the time source used for BuiltAt.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}
