// SPDX-License-Identifier: MIT

// Command mtrxmaths applies one matrix operation to matrices read from text
// files or standard input.
//
//	mtrxmaths -D m.txt          determinant
//	mtrxmaths -m a.txt b.txt    product
//	cat m.txt | mtrxmaths -i -  inverse of standard input
//
// Diagnostics go to stderr; any failure exits with status 1.
package main

import (
	"log"

	"github.com/katalvlaran/mtrxmaths/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mtrxmaths: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err = newRootCmd(cfg).Execute(); err != nil {
		log.Fatal(err)
	}
}
