package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/tritium/packages/address"
	"github.com/iotaledger/tritium/packages/iss"
	"github.com/iotaledger/tritium/packages/trinary"
	"github.com/iotaledger/tritium/plugins/config"
)

func execAddressCommand(command *flag.FlagSet) {
	seedPtr := command.String("seed", "", "the seed of the addresses (81 trytes)")
	indexPtr := command.Int("index", 0, "the key index of the first address")
	countPtr := command.Int("count", 1, "the number of consecutive addresses")
	securityPtr := command.Int("security", int(iss.SecurityLevelMedium), "the security level of the addresses (1-3)")

	parseCommand(command)

	if *seedPtr == "" {
		printUsage(command, "seed has to be set")
	}
	if *countPtr <= 0 {
		printUsage(command, "count has to be bigger than 0")
	}
	seed := trytesToTrits(command, "seed", *seedPtr, trinary.HashTrinarySize)

	generator, err := address.NewGenerator(seed, iss.SecurityLevel(*securityPtr), spongeMode(command),
		address.CacheTTL(config.Node.GetDuration(CfgAddressCacheTTL)),
		address.CacheSize(config.Node.GetInt(CfgAddressCacheSize)),
	)
	if err != nil {
		printUsage(command, err.Error())
	}
	defer func() { _ = generator.Close() }()

	addresses, err := generator.Addresses(*indexPtr, *countPtr)
	if err != nil {
		printUsage(command, err.Error())
	}

	// initialize tab writer
	w := new(tabwriter.Writer)
	w.Init(os.Stdout, 0, 8, 2, '\t', 0)
	_, _ = fmt.Fprintf(w, "%s\t%s\n", "INDEX", "ADDRESS")
	_, _ = fmt.Fprintf(w, "%s\t%s\n", "-----", "---------------------------------------------------------------------------------")
	for i, addr := range addresses {
		_, _ = fmt.Fprintf(w, "%d\t%s\n", *indexPtr+i, addr)
	}
	_ = w.Flush()
}
