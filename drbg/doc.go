//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package drbg implements the NIST SP 800-90A CTR_DRBG deterministic
// random bit generator without derivation function. The generator
// runs AES-128, AES-192, or AES-256 in counter mode over an internal
// (key, V) state.
//
// Since the derivation function is not supported, all seed material
// (entropy input, personalization string, and additional input) must
// be exactly Cipher.SeedSize() bytes long: the key size plus the
// 16-byte block size.
//
// Typical usage:
//
//	d, err := drbg.New(drbg.AES256, entropy, personalization)
//	if err != nil { ... }
//	out := make([]byte, 64)
//	d.Generate(out)
//	err = d.GenerateWithAdditionalInput(out, additional)
//
// The generator does not keep a reseed counter and it never requests
// reseeding by itself. A DRBG instance is not safe for concurrent use;
// callers sharing an instance between goroutines must serialize
// access with a mutex.
package drbg
