// SPDX-License-Identifier: MPL-2.0

package instant

// Compare returns -1, 0 or +1 ordering i against other.
// Any invalid operand compares as 0.
func (i Instant) Compare(other Instant) int {
	if !i.valid || !other.valid {
		return 0
	}
	switch {
	case i.ms < other.ms:
		return -1
	case i.ms > other.ms:
		return 1
	}
	return 0
}

// Before reports whether i precedes other. False if either is invalid.
func (i Instant) Before(other Instant) bool {
	return i.valid && other.valid && i.ms < other.ms
}

// After reports whether i follows other. False if either is invalid.
func (i Instant) After(other Instant) bool {
	return i.valid && other.valid && i.ms > other.ms
}

// Equal reports whether both instants are valid and denote the same
// millisecond.
func (i Instant) Equal(other Instant) bool {
	return i.valid && other.valid && i.ms == other.ms
}
