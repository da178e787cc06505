//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the global environment for instantiating
// generators from a live entropy source.
package env

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/markkurossi/ctrdrbg/drbg"
)

// Config defines the generator configuration. Config must not be
// modified after being used to instantiate generators. It is safe for
// concurrent use as it is not modified by its methods.
type Config struct {
	Rand   io.Reader
	Cipher drbg.Cipher
}

// GetRandom returns the source of entropy for instantiating and
// reseeding generators.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetCipher returns the generator block cipher. The default cipher
// is AES-256.
func (config *Config) GetCipher() drbg.Cipher {
	if config.Cipher != 0 {
		return config.Cipher
	}
	return drbg.AES256
}

// NewDRBG instantiates a new generator with entropy input read from
// the configured entropy source. The personalization string must be
// nil or SeedSize() bytes long; nil is treated as all zeros.
func (config *Config) NewDRBG(personalization []byte) (*drbg.DRBG, error) {
	c := config.GetCipher()
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %v", drbg.ErrUnsupportedCipher, c)
	}
	entropy, err := config.entropy(c)
	if err != nil {
		return nil, err
	}
	if personalization == nil {
		personalization = make([]byte, c.SeedSize())
	}
	return drbg.New(c, entropy, personalization)
}

// Reseed reseeds the generator with entropy input read from the
// configured entropy source.
func (config *Config) Reseed(d *drbg.DRBG, additional []byte) error {
	entropy, err := config.entropy(d.Cipher())
	if err != nil {
		return err
	}
	return d.Reseed(entropy, additional)
}

func (config *Config) entropy(c drbg.Cipher) ([]byte, error) {
	buf := make([]byte, c.SeedSize())
	if _, err := io.ReadFull(config.GetRandom(), buf); err != nil {
		return nil, fmt.Errorf("env: failed to read entropy input: %w", err)
	}
	return buf, nil
}
