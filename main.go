package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/tritium/plugins/banner"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if exit, ok := r.(Exit); ok {
				os.Exit(exit.Code)
			}
			panic(r)
		}
	}()

	flag.Usage = func() {
		printUsage(nil)
	}

	// check if parameter counts is large enough
	if len(os.Args) < 2 {
		printUsage(nil)
	}

	// switch logic according to provided sub command
	switch os.Args[1] {
	case "seed":
		execSeedCommand(newCommand("seed"))
	case "hash":
		execHashCommand(newCommand("hash"))
	case "address":
		execAddressCommand(newCommand("address"))
	case "sign":
		execSignCommand(newCommand("sign"))
	case "verify":
		execVerifyCommand(newCommand("verify"))
	case "pow":
		execPoWCommand(newCommand("pow"))
	case "version":
		banner.Print()
	case "help":
		printUsage(nil)
	default:
		printUsage(nil, fmt.Sprintf("unknown [COMMAND]: %s", os.Args[1]))
	}
}
