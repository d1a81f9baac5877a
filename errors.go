package dynbitset

import "fmt"

// ErrIndexOutOfRange indicates a bit position outside the allocated
// storage of a BitSet. Bits is the storage capacity in bits at the
// time of the failed access, which may exceed Len when the last byte
// has spare bits.
type ErrIndexOutOfRange struct {
	Pos  int
	Bits int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bit index out of range: pos %d, storage %d bits", e.Pos, e.Bits)
}
