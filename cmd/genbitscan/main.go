// Command genbitscan searches for a bitscan magic and prints the Go source
// for the constant and its lookup table.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/l3kn/chesscore/internal/bitscan"
)

var (
	magicFlag = flag.Uint64("magic", 0, "Build the table for this magic instead of searching")
	check     = flag.Bool("check", false, "Verify the compiled-in magic and table, then exit")
)

func main() {
	flag.Parse()

	if *check {
		if err := bitscan.Verify(bitscan.Magic, bitscan.Table()); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("magic %#016X: table ok\n", bitscan.Magic)
		return
	}

	magic := *magicFlag
	if magic == 0 {
		var err error
		magic, err = bitscan.FindMagic()
		if err != nil {
			log.Fatal(err)
		}
	}

	db, err := bitscan.BuildTable(magic)
	if err != nil {
		log.Fatal(err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "const Magic uint64 = %#016X\n\n", magic)
	sb.WriteString("var table = [64]uint8{\n")
	for row := 0; row < 4; row++ {
		sb.WriteString("\t")
		for col := 0; col < 16; col++ {
			fmt.Fprintf(&sb, "%d,", db[row*16+col])
			if col < 15 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")

	if _, err := os.Stdout.WriteString(sb.String()); err != nil {
		log.Fatal(err)
	}
}
