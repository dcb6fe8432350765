package config

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgConfigName contains the name of the parameter that sets the config file name.
	CfgConfigName = "config"
	// CfgConfigDir contains the name of the parameter that sets the directory of the config file.
	CfgConfigDir = "config-dir"
	// CfgSkipConfig contains the name of the parameter that disables the config file availability check.
	CfgSkipConfig = "skip-config"
)

var (
	configName          = flag.StringP(CfgConfigName, "c", "config", "Filename of the config file without the file extension")
	configDirPath       = flag.StringP(CfgConfigDir, "d", ".", "Path to the directory containing the config file")
	skipConfigAvailable = flag.Bool(CfgSkipConfig, false, "Skip config file availability check")
)
