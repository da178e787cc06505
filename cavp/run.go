//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package cavp

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/markkurossi/ctrdrbg/drbg"
)

// ErrUnsupported is returned for test cases using the derivation
// function or prediction resistance.
var ErrUnsupported = errors.New("cavp: unsupported test case")

// Run runs the test case and returns the output of its second
// generate call.
func (tc *TestCase) Run() ([]byte, error) {
	if tc.Derivation {
		return nil, fmt.Errorf("%w: derivation function", ErrUnsupported)
	}
	if tc.PredictionResistance || len(tc.EntropyInputPR) > 0 {
		return nil, fmt.Errorf("%w: prediction resistance", ErrUnsupported)
	}
	c, err := drbg.ParseCipher(tc.Mechanism)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, err)
	}

	d, err := drbg.New(c, tc.EntropyInput,
		zeroPad(tc.PersonalizationString, c.SeedSize()))
	if err != nil {
		return nil, err
	}
	if len(tc.EntropyInputReseed) > 0 {
		err = d.Reseed(tc.EntropyInputReseed, tc.AdditionalInputReseed)
		if err != nil {
			return nil, err
		}
	}

	n := tc.ReturnedBitsLen / 8
	if n == 0 {
		n = len(tc.ReturnedBits)
	}
	out := make([]byte, n)

	for _, additional := range [][]byte{tc.AdditionalInput1, tc.AdditionalInput2} {
		if len(additional) > 0 {
			err = d.GenerateWithAdditionalInput(out, additional)
			if err != nil {
				return nil, err
			}
		} else {
			d.Generate(out)
		}
	}
	return out, nil
}

// Verify runs the test case and compares its output against the
// expected returned bits.
func (tc *TestCase) Verify() error {
	out, err := tc.Run()
	if err != nil {
		return err
	}
	if !bytes.Equal(out, tc.ReturnedBits) {
		return fmt.Errorf("cavp: %s: got %x, expected %x",
			tc, out, tc.ReturnedBits)
	}
	return nil
}

func zeroPad(data []byte, size int) []byte {
	if len(data) > 0 {
		return data
	}
	return make([]byte, size)
}
