package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	bignum "github.com/shabbyrobe/go-bignum"
)

// This is a small debugging aid: it parses a decimal literal and dumps the
// digit store behind it, so you can see exactly which base 1<<32 words an Int
// ends up holding. Pass an optional base to also see the digits that
// Int.Digits produces for it.

const usage = `Word dumper

Usage: <decimal> [base]`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	v, err := bignum.IntFromString(os.Args[1])
	if err != nil {
		return err
	}

	base := 10
	if len(os.Args) > 2 {
		base, err = strconv.Atoi(os.Args[2])
		if err != nil {
			return err
		}
		if base < 2 || base > 36 {
			return fmt.Errorf("base must be between 2 and 36, found %d", base)
		}
	}

	cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

	fmt.Printf("value: %s\n", v)
	fmt.Printf("sign:  %d\n", v.Sign())
	fmt.Printf("bits:  %d\n", v.BitLen())
	fmt.Printf("words: ")
	cfg.Dump(v.Words())

	fmt.Printf("base %d: %s\n", base, v.Text(base))
	fmt.Printf("digits: ")
	cfg.Dump(v.Digits(bignum.Word(base)))

	if v.IsInt64() {
		fmt.Printf("int64: %d\n", v.AsInt64())
	}
	return nil
}
