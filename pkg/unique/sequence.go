package unique

// Sequence hands out monotonically increasing ids starting at zero.
// Ids are never reused and the counter is never reset.
type Sequence struct {
	next int64
}

// NewSequence creates a sequence whose first id is 0.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next id and advances the counter.
func (s *Sequence) Next() int64 {
	id := s.next
	s.next++
	return id
}

// Issued returns how many ids have been handed out.
func (s *Sequence) Issued() int64 {
	return s.next
}
