package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// PluginName is the name of the config plugin.
const PluginName = "Config"

// Node holds the configuration of all plugins.
var Node *viper.Viper

func init() {
	Node = viper.New()
}

// Fetch loads the configuration from the given parsed flag set, the environment and the config file.
// Flags set on the command line take precedence over the environment, which takes precedence over
// the config file. Flag defaults are used for everything else.
//
// It reads a single config file named after the --config flag in the --config-dir directory ending
// with: .json, .toml, .yaml or .yml. A missing config file is only an error if --config was given
// explicitly and --skip-config was not.
func Fetch(flagSet *flag.FlagSet) error {
	// replace dots with underscores in env
	Node.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Node.AutomaticEnv()

	if err := Node.BindPFlags(flagSet); err != nil {
		return errors.Wrap(err, "failed to bind flags")
	}

	Node.SetConfigName(*configName)
	Node.AddConfigPath(*configDirPath)
	if err := Node.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && (*skipConfigAvailable || !flagSet.Changed(CfgConfigName)) {
			return nil
		}
		return errors.Wrapf(err, "failed to read config file %s in %s", *configName, *configDirPath)
	}

	return nil
}
