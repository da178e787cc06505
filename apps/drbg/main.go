//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/ctrdrbg/drbg"
	"github.com/markkurossi/ctrdrbg/env"
	"github.com/markkurossi/text/superscript"
)

func main() {
	cipherName := flag.String("cipher", "aes256",
		"block cipher: aes128, aes192, or aes256")
	entropyHex := flag.String("entropy", "",
		"entropy input as hex (default: read from crypto/rand)")
	persHex := flag.String("pers", "",
		"personalization string as hex (default: zeros)")
	addHex := flag.String("add", "",
		"additional input for each generate call as hex")
	n := flag.Int("n", 32, "number of bytes per generate call")
	count := flag.Int("count", 1, "number of generate calls")
	verbose := flag.Bool("v", false, "print generator state")
	cavpMode := flag.Bool("cavp", false, "run CAVP response files")
	bench := flag.Int("bench", 0,
		"benchmark keystream generators with `size` byte requests")
	rounds := flag.Int("rounds", 1000, "number of benchmark rounds")
	flag.Parse()

	log.SetFlags(0)

	if *cavpMode {
		if err := runCAVP(flag.Args()); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *bench > 0 {
		if err := benchmark(*bench, *rounds); err != nil {
			log.Fatal(err)
		}
		return
	}

	c, err := drbg.ParseCipher(*cipherName)
	if err != nil {
		log.Fatal(err)
	}
	if *n < 0 {
		log.Fatalf("invalid output length: %d", *n)
	}
	entropy, err := parseHex("entropy", *entropyHex)
	if err != nil {
		log.Fatal(err)
	}
	pers, err := parseHex("pers", *persHex)
	if err != nil {
		log.Fatal(err)
	}
	add, err := parseHex("add", *addHex)
	if err != nil {
		log.Fatal(err)
	}

	var d *drbg.DRBG
	if entropy == nil {
		config := &env.Config{
			Cipher: c,
		}
		d, err = config.NewDRBG(pers)
	} else {
		if pers == nil {
			pers = make([]byte, c.SeedSize())
		}
		d, err = drbg.New(c, entropy, pers)
	}
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		printState("instantiate", d)
	}

	out := make([]byte, *n)
	for i := 0; i < *count; i++ {
		if add != nil {
			err = d.GenerateWithAdditionalInput(out, add)
			if err != nil {
				log.Fatal(err)
			}
		} else {
			d.Generate(out)
		}
		fmt.Printf("%x\n", out)
		if *verbose {
			printState(fmt.Sprintf("generate %d", i), d)
		}
	}
}

func parseHex(name, val string) ([]byte, error) {
	if len(val) == 0 {
		return nil, nil
	}
	data, err := hex.DecodeString(val)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return data, nil
}

func printState(label string, d *drbg.DRBG) {
	key, v := d.State()
	fmt.Fprintf(os.Stderr, " - %s: %s\n", label, d.Cipher())
	fmt.Fprintf(os.Stderr, "   Key : %x\n", key)
	fmt.Fprintf(os.Stderr, "   V   : %x (mod 2%s)\n",
		v, superscript.Itoa(8*drbg.BlockSize))
}
