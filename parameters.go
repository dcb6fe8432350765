package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

const (
	// CfgSpongeMode defines the config flag of the sponge used for hashing, keys and signatures.
	CfgSpongeMode = "sponge.mode"
	// CfgAddressCacheTTL defines the config flag of how long derived addresses are cached.
	CfgAddressCacheTTL = "address.cacheTTL"
	// CfgAddressCacheSize defines the config flag of the maximum number of cached addresses.
	CfgAddressCacheSize = "address.cacheSize"
)

func init() {
	flag.String(CfgSpongeMode, "Kerl", "the sponge used for hashing, keys and signatures (options: \"CurlP27\", \"CurlP81\", \"Kerl\")")
	flag.Duration(CfgAddressCacheTTL, 10*time.Minute, "how long derived addresses are cached")
	flag.Int(CfgAddressCacheSize, 1000, "the maximum number of cached addresses")
}
