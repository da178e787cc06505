//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package drbg

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

var (
	// ErrInvalidSeedLength is returned when entropy input,
	// personalization string, or additional input is not exactly
	// Cipher.SeedSize() bytes long.
	ErrInvalidSeedLength = errors.New("drbg: invalid seed length")

	// ErrUnsupportedCipher is returned for unknown Cipher values.
	ErrUnsupportedCipher = errors.New("drbg: unsupported cipher")

	// ErrInvalidLength is returned for negative output lengths.
	ErrInvalidLength = errors.New("drbg: invalid output length")
)

// DRBG implements the CTR_DRBG generator state.
type DRBG struct {
	cipher  Cipher
	key     []byte
	v       [BlockSize]byte
	block   cipher.Block
	scratch []byte
	input   []byte
}

// New instantiates a new generator from the entropy input and
// personalization string. Both arguments must be c.SeedSize() bytes
// long.
func New(c Cipher, entropy, personalization []byte) (*DRBG, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCipher, c)
	}
	if err := c.checkSeed("entropy input", entropy); err != nil {
		return nil, err
	}
	if err := c.checkSeed("personalization string", personalization); err != nil {
		return nil, err
	}

	d := &DRBG{
		cipher:  c,
		key:     make([]byte, c.KeySize()),
		scratch: make([]byte, c.SeedSize()),
		input:   make([]byte, c.SeedSize()),
	}
	d.rekey()

	seed := make([]byte, c.SeedSize())
	for i := 0; i < len(seed); i++ {
		seed[i] = entropy[i] ^ personalization[i]
	}
	d.update(seed)

	return d, nil
}

// Cipher returns the generator's block cipher.
func (d *DRBG) Cipher() Cipher {
	return d.cipher
}

// State returns copies of the generator's current key and counter V.
func (d *DRBG) State() (key []byte, v [BlockSize]byte) {
	key = make([]byte, len(d.key))
	copy(key, d.key)
	return key, d.v
}

// Clone creates an independent copy of the generator. The clone and
// the original produce identical output for identical calls.
func (d *DRBG) Clone() *DRBG {
	c := &DRBG{
		cipher:  d.cipher,
		key:     make([]byte, len(d.key)),
		v:       d.v,
		scratch: make([]byte, len(d.scratch)),
		input:   make([]byte, len(d.input)),
	}
	copy(c.key, d.key)
	c.rekey()
	return c
}

// Generate fills dst with pseudorandom bytes.
func (d *DRBG) Generate(dst []byte) {
	d.generate(dst, nil)
}

// GenerateWithAdditionalInput fills dst with pseudorandom bytes after
// mixing the additional input into the state. The additional input
// must be SeedSize() bytes long. It is mixed into the state both
// before and after the output is produced, and it may overlap dst.
// On error, the state is not modified.
func (d *DRBG) GenerateWithAdditionalInput(dst, additional []byte) error {
	if err := d.cipher.checkSeed("additional input", additional); err != nil {
		return err
	}
	d.generate(dst, additional)
	return nil
}

// Bytes returns n pseudorandom bytes. It panics if n is negative.
func (d *DRBG) Bytes(n int) []byte {
	if n < 0 {
		panic(fmt.Sprintf("drbg.Bytes: negative length %d", n))
	}
	buf := make([]byte, n)
	d.Generate(buf)
	return buf
}

// BytesWithAdditionalInput returns n pseudorandom bytes generated
// with the additional input.
func (d *DRBG) BytesWithAdditionalInput(n int, additional []byte) (
	[]byte, error) {

	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	buf := make([]byte, n)
	if err := d.GenerateWithAdditionalInput(buf, additional); err != nil {
		return nil, err
	}
	return buf, nil
}

// Reseed mixes fresh entropy input and optional additional input into
// the state. The entropy input must be SeedSize() bytes long. The
// additional input must be nil or SeedSize() bytes long.
func (d *DRBG) Reseed(entropy, additional []byte) error {
	if err := d.cipher.checkSeed("entropy input", entropy); err != nil {
		return err
	}
	if additional != nil {
		err := d.cipher.checkSeed("additional input", additional)
		if err != nil {
			return err
		}
	}
	seed := make([]byte, len(entropy))
	copy(seed, entropy)
	for i := 0; i < len(additional); i++ {
		seed[i] ^= additional[i]
	}
	d.update(seed)
	return nil
}

func (d *DRBG) generate(dst, additional []byte) {
	if additional != nil {
		copy(d.input, additional)
		additional = d.input
		d.update(additional)
	}
	d.fill(dst)
	d.update(additional)
}

// update derives a new key and V from SeedSize() bytes of keystream,
// XORed with the provided data if it is not nil.
func (d *DRBG) update(provided []byte) {
	d.fill(d.scratch)
	for i := 0; i < len(provided); i++ {
		d.scratch[i] ^= provided[i]
	}

	keySize := d.cipher.KeySize()
	copy(d.key, d.scratch[:keySize])
	copy(d.v[:], d.scratch[keySize:])
	d.rekey()
}

func (d *DRBG) rekey() {
	block, err := aes.NewCipher(d.key)
	if err != nil {
		panic(err)
	}
	d.block = block
}

// increment increments V as a 128-bit big-endian integer modulo
// 2^128.
func (d *DRBG) increment() {
	for i := BlockSize - 1; i >= 0; i-- {
		d.v[i]++
		if d.v[i] != 0 {
			break
		}
	}
}

// nextBlock increments V and encrypts it into dst which must be at
// least BlockSize bytes long.
func (d *DRBG) nextBlock(dst []byte) {
	d.increment()
	d.block.Encrypt(dst, d.v[:])
}

// fill fills dst with keystream. The unused tail of the last partial
// block is discarded.
func (d *DRBG) fill(dst []byte) {
	for len(dst) >= BlockSize {
		d.nextBlock(dst[:BlockSize])
		dst = dst[BlockSize:]
	}
	if len(dst) > 0 {
		var tmp [BlockSize]byte
		d.nextBlock(tmp[:])
		copy(dst, tmp[:])
	}
}
