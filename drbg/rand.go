//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package drbg

import (
	"encoding/binary"
)

// Read implements io.Reader. It fills p with one Generate call and
// never fails.
func (d *DRBG) Read(p []byte) (int, error) {
	d.Generate(p)
	return len(p), nil
}

// Uint32 returns a pseudorandom uint32 decoded in little-endian byte
// order from one 4-byte Generate call.
func (d *DRBG) Uint32() uint32 {
	var buf [4]byte
	d.Generate(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

// Uint64 returns a pseudorandom uint64 decoded in little-endian byte
// order from one 8-byte Generate call. With Uint64, DRBG implements
// the math/rand/v2 Source interface.
func (d *DRBG) Uint64() uint64 {
	var buf [8]byte
	d.Generate(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// Int32 returns a pseudorandom int32.
func (d *DRBG) Int32() int32 {
	return int32(d.Uint32())
}

// Bool returns a pseudorandom boolean from the most significant bit
// of Uint32.
func (d *DRBG) Bool() bool {
	return d.Int32() < 0
}
