package packet

// Relative reports whether bit is set in the PlayerPosition flags field,
// meaning the matching coordinate/angle is a delta from the player's
// current state rather than an absolute value.
func (m PlayerPositionMask) Relative(flags int32) bool {
	return flags&int32(m) != 0
}
