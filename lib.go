package main

import (
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/tritium/packages/sponge"
	"github.com/iotaledger/tritium/packages/trinary"
	"github.com/iotaledger/tritium/plugins/banner"
	"github.com/iotaledger/tritium/plugins/config"
	"github.com/iotaledger/tritium/plugins/logger"
)

// Exit should be used inside panic instead of os.Exit(). This will allow to call deferred statements.
type Exit struct{ Code int }

// newCommand creates the flag set of a sub command. It contains the global configuration flags.
func newCommand(name string) *flag.FlagSet {
	command := flag.NewFlagSet(name, flag.ExitOnError)
	command.Bool("help", false, "show this help screen")
	return command
}

// parseCommand parses the arguments of the sub command and loads the configuration.
func parseCommand(command *flag.FlagSet) {
	command.AddFlagSet(flag.CommandLine)
	if err := command.Parse(os.Args[2:]); err != nil {
		printUsage(command, err.Error())
	}
	if help, _ := command.GetBool("help"); help {
		printUsage(command)
	}

	if err := config.Fetch(command); err != nil {
		printUsage(command, err.Error())
	}
	if err := logger.Init(); err != nil {
		printUsage(command, err.Error())
	}
}

func spongeMode(command *flag.FlagSet) sponge.Mode {
	mode, err := sponge.ParseMode(config.Node.GetString(CfgSpongeMode))
	if err != nil {
		printUsage(command, err.Error())
	}
	return mode
}

func trytesToTrits(command *flag.FlagSet, name string, trytes string, length int) trinary.Trits {
	trits, err := trinary.TrytesToTrits(trytes)
	if err != nil {
		printUsage(command, fmt.Sprintf("%s: %s", name, err))
	}
	if length > 0 && len(trits) != length {
		printUsage(command, fmt.Sprintf("%s must have %d trytes", name, length/trinary.TritsPerTryte))
	}
	return trits
}

func printUsage(command *flag.FlagSet, optionalErrorMessage ...string) {
	if len(optionalErrorMessage) >= 1 {
		_, _ = fmt.Fprintf(os.Stderr, "\n")
		_, _ = fmt.Fprintf(os.Stderr, "ERROR:\n  %s\n", optionalErrorMessage[0])
	}

	if command == nil {
		fmt.Println()
		banner.Print()
		fmt.Println()
		fmt.Println("USAGE:")
		fmt.Println("  " + filepath.Base(os.Args[0]) + " [COMMAND]")
		fmt.Println()
		fmt.Println("COMMANDS:")
		fmt.Println("  seed")
		fmt.Println("        generate a new random seed")
		fmt.Println("  hash")
		fmt.Println("        hash trytes with the configured sponge")
		fmt.Println("  address")
		fmt.Println("        derive the addresses of a seed")
		fmt.Println("  sign")
		fmt.Println("        sign a bundle hash with the key of a seed")
		fmt.Println("  verify")
		fmt.Println("        verify the signature fragments of a bundle hash against an address")
		fmt.Println("  pow")
		fmt.Println("        search the nonce of a transaction")
		fmt.Println("  version")
		fmt.Println("        display the version")
		fmt.Println("  help")
		fmt.Println("        display this help screen")

		flag.PrintDefaults()

		if len(optionalErrorMessage) >= 1 {
			panic(Exit{1})
		}

		panic(Exit{0})
	}

	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  " + filepath.Base(os.Args[0]) + " " + command.Name() + " [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	command.PrintDefaults()

	if len(optionalErrorMessage) >= 1 {
		panic(Exit{1})
	}

	panic(Exit{0})
}
