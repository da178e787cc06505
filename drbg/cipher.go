//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package drbg

import (
	"crypto/aes"
	"fmt"
	"strings"
)

// BlockSize specifies the cipher block size in bytes. It is also the
// size of the generator's counter V.
const BlockSize = aes.BlockSize

// Cipher identifies the block cipher and key size of the generator.
type Cipher int

// Supported ciphers. The zero Cipher is not a valid cipher.
const (
	AES128 Cipher = iota + 1
	AES192
	AES256
)

var ciphers = map[Cipher]struct {
	name    string
	keySize int
}{
	AES128: {"AES-128", 16},
	AES192: {"AES-192", 24},
	AES256: {"AES-256", 32},
}

func (c Cipher) String() string {
	info, ok := ciphers[c]
	if !ok {
		return fmt.Sprintf("Cipher(%d)", int(c))
	}
	return info.name
}

// Valid tests if the cipher is supported.
func (c Cipher) Valid() bool {
	_, ok := ciphers[c]
	return ok
}

// KeySize returns the cipher key size in bytes.
func (c Cipher) KeySize() int {
	return ciphers[c].keySize
}

// SeedSize returns the seed length in bytes. This is the required
// length of entropy input, personalization string, and additional
// input.
func (c Cipher) SeedSize() int {
	return c.KeySize() + BlockSize
}

func (c Cipher) checkSeed(name string, data []byte) error {
	if len(data) != c.SeedSize() {
		return fmt.Errorf("%w: %s: got %d bytes, expected %d",
			ErrInvalidSeedLength, name, len(data), c.SeedSize())
	}
	return nil
}

// ParseCipher parses the cipher name. It accepts the forms "AES-128",
// "aes128", and "128", and the corresponding forms for 192 and 256
// bit keys.
func ParseCipher(val string) (Cipher, error) {
	name := strings.ToLower(strings.ReplaceAll(val, "-", ""))
	name = strings.TrimPrefix(name, "aes")

	switch name {
	case "128":
		return AES128, nil
	case "192":
		return AES192, nil
	case "256":
		return AES256, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCipher, val)
	}
}
