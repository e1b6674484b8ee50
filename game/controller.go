package game

// Controller drives every player of one Kind during a tick and returns any
// bullets fired
type Controller interface {
	Kind() Kind
	Update(state *GameState, in Input, now int64) []BulletState
}

// NextBulletSeqID hands out the next bullet sequence number for the snapshot
func (s *GameState) NextBulletSeqID() uint64 {
	s.NextBulletSeq++
	return s.NextBulletSeq
}
