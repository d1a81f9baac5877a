// Package dynbitset provides a dynamically sized bit set backed by a
// byte array.
//
// # Design
//
//   - Storage: []byte, bits packed LSB-first within each byte
//   - Sizing: one byte below 8 bits, then one byte per started run
//     of 8 bits (note: not ceil(n/8) everywhere; a zero-width set
//     still allocates one byte)
//   - Bounds: Set and Test are checked against the allocated storage
//     and return *ErrIndexOutOfRange instead of panicking
//   - Resize follows growable-array semantics: surviving bytes keep
//     their contents, grown bytes are zero, shrinking truncates
//
// Count and String iterate logical bit positions up to Len, so bits
// left stale in the last byte by a shrink-then-grow Resize sequence
// never leak into either.
//
// # Quick Start
//
//	b := dynbitset.New(10)
//	_ = b.Set(0, true)
//	_ = b.Set(9, true)
//
//	fmt.Println(b.Count())  // 2
//	fmt.Println(b)          // "1000000001"
//
// BitSet is a plain value-like container: single-threaded, no I/O,
// no internal locking. Callers that need concurrent access must
// provide their own synchronization.
package dynbitset
