//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package cavp parses NIST CAVP CTR_DRBG response files and runs
// their test vectors against the drbg package.
package cavp

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	reMechanism = regexp.MustCompilePOSIX(`^([^ ]+) (no|use) df$`)
	reAssign    = regexp.MustCompilePOSIX(`^([[:alnum:]]+)[[:space:]]*=[[:space:]]*(.*)$`)
)

// TestCase defines a CTR_DRBG test vector.
type TestCase struct {
	Mechanism            string
	Derivation           bool
	PredictionResistance bool
	ReturnedBitsLen      int
	Count                int

	EntropyInput          []byte
	Nonce                 []byte
	PersonalizationString []byte
	EntropyInputReseed    []byte
	AdditionalInputReseed []byte
	EntropyInputPR        [][]byte
	AdditionalInput1      []byte
	AdditionalInput2      []byte
	ReturnedBits          []byte
}

func (tc *TestCase) String() string {
	df := "no df"
	if tc.Derivation {
		df = "use df"
	}
	return fmt.Sprintf("%s %s PR=%v #%d", tc.Mechanism, df,
		tc.PredictionResistance, tc.Count)
}

// ParseFile parses the response file.
func ParseFile(file string) ([]*TestCase, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return result, nil
}

// Parse parses the response file data from the reader.
func Parse(in io.Reader) ([]*TestCase, error) {
	var result []*TestCase
	var section TestCase
	var current *TestCase
	var additionalInputs int

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var lineno int
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		if line[0] == '[' {
			if line[len(line)-1] != ']' {
				return nil, fmt.Errorf("cavp: %d: unterminated section: %s",
					lineno, line)
			}
			current = nil
			err := section.setParam(strings.TrimSpace(line[1 : len(line)-1]))
			if err != nil {
				return nil, fmt.Errorf("cavp: %d: %w", lineno, err)
			}
			continue
		}

		m := reAssign.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("cavp: %d: syntax error: %s", lineno, line)
		}
		key, val := m[1], strings.TrimSpace(m[2])

		if key == "COUNT" {
			count, err := strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("cavp: %d: invalid COUNT: %s",
					lineno, val)
			}
			tc := section
			tc.Count = count
			current = &tc
			result = append(result, current)
			additionalInputs = 0
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("cavp: %d: %s outside test case",
				lineno, key)
		}

		data, err := decode(val)
		if err != nil {
			return nil, fmt.Errorf("cavp: %d: %s: %w", lineno, key, err)
		}

		switch key {
		case "EntropyInput":
			current.EntropyInput = data
		case "Nonce":
			current.Nonce = data
		case "PersonalizationString":
			current.PersonalizationString = data
		case "EntropyInputReseed":
			current.EntropyInputReseed = data
		case "AdditionalInputReseed":
			current.AdditionalInputReseed = data
		case "EntropyInputPR":
			current.EntropyInputPR = append(current.EntropyInputPR, data)
		case "AdditionalInput":
			switch additionalInputs {
			case 0:
				current.AdditionalInput1 = data
			case 1:
				current.AdditionalInput2 = data
			default:
				return nil, fmt.Errorf("cavp: %d: too many AdditionalInput lines",
					lineno)
			}
			additionalInputs++
		case "ReturnedBits":
			current.ReturnedBits = data
		default:
			return nil, fmt.Errorf("cavp: %d: unknown field %s", lineno, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// setParam sets a section parameter. Mechanism headers reset all
// parameters.
func (tc *TestCase) setParam(param string) error {
	m := reMechanism.FindStringSubmatch(param)
	if m != nil {
		*tc = TestCase{
			Mechanism:  m[1],
			Derivation: m[2] == "use",
		}
		return nil
	}
	m = reAssign.FindStringSubmatch(param)
	if m == nil {
		return fmt.Errorf("invalid section: %s", param)
	}
	key, val := m[1], strings.TrimSpace(m[2])

	switch key {
	case "PredictionResistance":
		v, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid %s: %s", key, val)
		}
		tc.PredictionResistance = v

	case "ReturnedBitsLen":
		v, err := strconv.Atoi(val)
		if err != nil || v < 0 || v%8 != 0 {
			return fmt.Errorf("invalid %s: %s", key, val)
		}
		tc.ReturnedBitsLen = v

	default:
		// Input length parameters are implied by the decoded values.
	}
	return nil
}

// decode decodes the hex value. Empty values decode to nil.
func decode(val string) ([]byte, error) {
	if len(val) == 0 {
		return nil, nil
	}
	return hex.DecodeString(val)
}
