package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/tritium/packages/iss"
	"github.com/iotaledger/tritium/packages/trinary"
)

func execSignCommand(command *flag.FlagSet) {
	seedPtr := command.String("seed", "", "the seed of the signing key (81 trytes)")
	indexPtr := command.Int("index", 0, "the key index")
	securityPtr := command.Int("security", int(iss.SecurityLevelMedium), "the security level of the key (1-3)")
	bundlePtr := command.String("bundle", "", "the bundle hash to sign (81 trytes)")

	parseCommand(command)

	if *seedPtr == "" {
		printUsage(command, "seed has to be set")
	}
	if *bundlePtr == "" {
		printUsage(command, "bundle has to be set")
	}
	seed := trytesToTrits(command, "seed", *seedPtr, trinary.HashTrinarySize)
	bundleHash := trytesToTrits(command, "bundle", *bundlePtr, trinary.HashTrinarySize)

	fragments, err := iss.Sign(spongeMode(command), seed, *indexPtr, iss.SecurityLevel(*securityPtr), bundleHash)
	if err != nil {
		printUsage(command, err.Error())
	}

	for _, fragment := range fragments {
		fmt.Println(trinary.MustTritsToTrytes(fragment))
	}
}
