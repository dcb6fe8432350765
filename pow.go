package main

import (
	"fmt"

	"github.com/iotaledger/hive.go/daemon"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/tritium/packages/pearldiver"
	"github.com/iotaledger/tritium/packages/trinary"
	"github.com/iotaledger/tritium/plugins/dependencyinjection"
	"github.com/iotaledger/tritium/plugins/gracefulshutdown"
	"github.com/iotaledger/tritium/plugins/pow"
	"github.com/iotaledger/tritium/plugins/prometheus"
)

func execPoWCommand(command *flag.FlagSet) {
	trytesPtr := command.String("trytes", "", "the transaction trytes (2673 trytes)")

	parseCommand(command)

	if *trytesPtr == "" {
		printUsage(command, "trytes has to be set")
	}
	transaction := trytesToTrits(command, "trytes", *trytesPtr, pearldiver.TransactionTrinarySize)

	if err := dependencyinjection.Container.Provide(pow.Worker); err != nil {
		printUsage(command, err.Error())
	}

	var nonce trinary.Trytes
	if err := dependencyinjection.Container.Invoke(func(worker *pearldiver.PearlDiver) error {
		defer worker.Shutdown()

		prometheus.Configure(worker)
		if err := prometheus.Run(); err != nil {
			return err
		}
		gracefulshutdown.Configure()
		daemon.Start()
		defer daemon.ShutdownAndWait()

		var err error
		nonce, err = pow.DoPOW(transaction)
		return err
	}); err != nil {
		printUsage(command, err.Error())
	}

	fmt.Println("NONCE:      ", nonce)
	fmt.Println("TRANSACTION:", trinary.MustTritsToTrytes(transaction))
}
