package dynbitset

import "strings"

// BitSet is a dynamically sized bit set backed by a byte array.
// Bits are packed LSB-first within each byte: bit i lives at
// data[i/8] bit position i%8.
//
// The zero value is an empty, usable bit set.
//
// BitSet is not safe for concurrent use; callers that share an
// instance across goroutines must serialize access themselves.
type BitSet struct {
	numBits int
	data    []byte
}

// numBytes returns the storage size in bytes for nbits logical bits.
//
// Sizes below 8 always get one byte, so numBytes(0) == 1 and the
// result is not ceil(nbits/8) everywhere. Callers depend on the exact
// allocation sizes, so the under-8 branch is kept as is.
func numBytes(nbits int) int {
	if nbits < 8 {
		return 1
	}
	return 1 + (nbits-1)/8
}

// New creates a BitSet with the given number of bits, all unset.
func New(nbits int) *BitSet {
	return &BitSet{
		numBits: nbits,
		data:    make([]byte, numBytes(nbits)),
	}
}

// Len returns the logical size of the bit set in bits.
func (b *BitSet) Len() int {
	return b.numBits
}

// Resize changes the logical size to nbits, like resizing a growable
// array of bytes: surviving bytes keep their contents, bytes added by
// growth are zero, bytes dropped by shrinking are discarded.
//
// Shrinking does not clear bits above nbits in the last surviving
// byte. They stay out of Count and String, which stop at Len, but a
// later grow makes them addressable again. Call Set or Reset if a
// clean slate is required.
func (b *BitSet) Resize(nbits int) {
	b.numBits = nbits

	words := numBytes(nbits)
	switch {
	case words <= len(b.data):
		b.data = b.data[:words]
	case words <= cap(b.data):
		// Reused capacity may hold bytes from before a shrink.
		prev := len(b.data)
		b.data = b.data[:words]
		clear(b.data[prev:])
	default:
		grown := make([]byte, words)
		copy(grown, b.data)
		b.data = grown
	}
}

// Set sets the bit at pos to value: OR with a single-bit mask to turn
// it on, AND with the mask's complement to turn it off.
//
// The bounds contract follows the storage, not Len: any pos whose
// byte index fits in the allocated bytes is accepted, including the
// spare high bits of the last byte. Out of range returns
// *ErrIndexOutOfRange.
func (b *BitSet) Set(pos int, value bool) error {
	if pos < 0 || pos>>3 >= len(b.data) {
		return &ErrIndexOutOfRange{Pos: pos, Bits: len(b.data) * 8}
	}

	mask := byte(1) << (pos & 7)
	if value {
		b.data[pos>>3] |= mask
	} else {
		b.data[pos>>3] &^= mask
	}

	return nil
}

// Test reports whether the bit at pos is set. Same bounds contract as
// Set.
func (b *BitSet) Test(pos int) (bool, error) {
	if pos < 0 || pos>>3 >= len(b.data) {
		return false, &ErrIndexOutOfRange{Pos: pos, Bits: len(b.data) * 8}
	}

	return b.test(pos), nil
}

// test is the unchecked read used by the Len-bounded loops.
func (b *BitSet) test(pos int) bool {
	return (b.data[pos>>3]>>(pos&7))&1 == 1
}

// Count returns the number of set bits below Len.
//
// It walks logical bit positions rather than popcounting whole bytes,
// so stale bits parked above Len in the last byte never reach the
// count.
func (b *BitSet) Count() uint32 {
	var c uint32
	for i := 0; i < b.numBits; i++ {
		if b.test(i) {
			c++
		}
	}

	return c
}

// Reset clears every byte of storage. Len is unchanged.
func (b *BitSet) Reset() {
	clear(b.data)
}

// Clone returns a deep copy sharing no storage with b.
func (b *BitSet) Clone() *BitSet {
	c := &BitSet{numBits: b.numBits}
	if b.data != nil {
		c.data = make([]byte, len(b.data))
		copy(c.data, b.data)
	}

	return c
}

// String renders the set as Len characters of '1' and '0', highest
// index first, matching conventional binary notation. The output
// length always equals Len.
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.Grow(b.numBits)

	for i := b.numBits - 1; i >= 0; i-- {
		if b.test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
