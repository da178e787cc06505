//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/markkurossi/ctrdrbg/cavp"
	"github.com/markkurossi/tabulate"
)

func runCAVP(files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("no CAVP response files")
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("File").SetAlign(tabulate.ML)
	tab.Header("Test").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.MR)

	var passed, failed, skipped int

	for _, file := range files {
		tests, err := cavp.ParseFile(file)
		if err != nil {
			return err
		}
		for _, tc := range tests {
			row := tab.Row()
			row.Column(file)
			row.Column(tc.String())

			err := tc.Verify()
			switch {
			case err == nil:
				passed++
				row.Column("pass")
			case errors.Is(err, cavp.ErrUnsupported):
				skipped++
				row.Column("skip").SetFormat(tabulate.FmtItalic)
			default:
				failed++
				row.Column("FAIL").SetFormat(tabulate.FmtBold)
			}
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d passed, %d skipped", passed, skipped)).
		SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d failed", failed)).SetFormat(tabulate.FmtBold)

	tab.Print(os.Stdout)

	if failed > 0 {
		return fmt.Errorf("%d test vectors failed", failed)
	}
	return nil
}
