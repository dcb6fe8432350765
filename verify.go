package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/tritium/packages/iss"
	"github.com/iotaledger/tritium/packages/trinary"
)

func execVerifyCommand(command *flag.FlagSet) {
	addressPtr := command.String("address", "", "the address of the signer (81 trytes)")
	bundlePtr := command.String("bundle", "", "the signed bundle hash (81 trytes)")
	signaturePtr := command.StringSlice("signature", nil, "the signature fragments in order (2187 trytes each, repeatable)")

	parseCommand(command)

	if *addressPtr == "" {
		printUsage(command, "address has to be set")
	}
	if *bundlePtr == "" {
		printUsage(command, "bundle has to be set")
	}
	if len(*signaturePtr) == 0 {
		printUsage(command, "signature has to be set")
	}

	expectedAddress := trytesToTrits(command, "address", *addressPtr, trinary.HashTrinarySize)
	bundleHash := trytesToTrits(command, "bundle", *bundlePtr, trinary.HashTrinarySize)
	fragments := make([]trinary.Trits, len(*signaturePtr))
	for i, fragment := range *signaturePtr {
		fragments[i] = trytesToTrits(command, "signature", fragment, iss.KeyFragmentLength)
	}

	valid, err := iss.ValidateSignatures(spongeMode(command), expectedAddress, fragments, bundleHash)
	if err != nil {
		printUsage(command, err.Error())
	}
	if !valid {
		fmt.Println("INVALID")
		panic(Exit{1})
	}

	fmt.Println("VALID")
}
