//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"os"
	"time"

	"github.com/markkurossi/ctrdrbg/drbg"
	"github.com/markkurossi/ctrdrbg/env"
	"github.com/markkurossi/tabulate"
	"golang.org/x/crypto/chacha20"
)

// FileSize specifies a byte count.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Generator fills buffers with keystream.
type Generator struct {
	Name string
	Fill func(buf []byte)
}

func newGenerators() ([]*Generator, error) {
	var result []*Generator

	for _, c := range []drbg.Cipher{drbg.AES128, drbg.AES192, drbg.AES256} {
		config := &env.Config{
			Cipher: c,
		}
		d, err := config.NewDRBG(nil)
		if err != nil {
			return nil, err
		}
		result = append(result, &Generator{
			Name: fmt.Sprintf("CTR_DRBG %s", c),
			Fill: d.Generate,
		})
	}

	var key [32]byte
	block, err := aes.NewCipher(key[:16])
	if err != nil {
		return nil, err
	}
	var iv [16]byte
	ctr := cipher.NewCTR(block, iv[:])
	result = append(result, &Generator{
		Name: "AES-128-CTR",
		Fill: func(buf []byte) {
			ctr.XORKeyStream(buf, buf)
		},
	})

	var nonce [chacha20.NonceSize]byte
	cc, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	result = append(result, &Generator{
		Name: "ChaCha20",
		Fill: func(buf []byte) {
			cc.XORKeyStream(buf, buf)
		},
	})

	return result, nil
}

func benchmark(size, rounds int) error {
	if rounds <= 0 {
		return fmt.Errorf("invalid number of rounds: %d", rounds)
	}
	generators, err := newGenerators()
	if err != nil {
		return err
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Generator").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("Xfer").SetAlign(tabulate.MR)
	tab.Header("Rate").SetAlign(tabulate.MR)

	buf := make([]byte, size)
	total := FileSize(size * rounds)

	for _, g := range generators {
		start := time.Now()
		for i := 0; i < rounds; i++ {
			g.Fill(buf)
		}
		duration := time.Since(start)

		row := tab.Row()
		row.Column(g.Name)
		row.Column(duration.String())
		row.Column(total.String())
		row.Column(rate(total, duration))
	}
	row := tab.Row()
	row.Column("Request").SetFormat(tabulate.FmtItalic)
	row.Column("")
	row.Column(FileSize(size).String()).SetFormat(tabulate.FmtItalic)
	row.Column("")

	tab.Print(os.Stdout)
	return nil
}

func rate(bytes FileSize, duration time.Duration) string {
	if duration <= 0 {
		return "-"
	}
	return fmt.Sprintf("%s/s",
		FileSize(float64(bytes)/duration.Seconds()).String())
}
