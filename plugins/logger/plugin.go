package logger

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/logger"

	"github.com/iotaledger/tritium/plugins/config"
)

// PluginName is the name of the logger plugin.
const PluginName = "Logger"

// Init initializes the global logger from the loaded configuration. It must be called after
// config.Fetch and before any plugin creates its logger.
func Init() error {
	loggerConfig := configuration.New()
	// unset keys keep the defaults of the logger
	for _, key := range []string{CfgLoggerLevel, CfgLoggerEncoding, CfgLoggerOutputPaths} {
		if !config.Node.IsSet(key) {
			continue
		}
		if err := loggerConfig.Set(key, config.Node.Get(key)); err != nil {
			return errors.Wrapf(err, "failed to set %s", key)
		}
	}

	if err := logger.InitGlobalLogger(loggerConfig); err != nil {
		return errors.Wrap(err, "failed to initialize global logger")
	}
	return nil
}
