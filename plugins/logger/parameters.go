package logger

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgLoggerLevel defines the config flag of the minimum enabled logging level.
	CfgLoggerLevel = "logger.level"
	// CfgLoggerEncoding defines the config flag of the log encoding, console or json.
	CfgLoggerEncoding = "logger.encoding"
	// CfgLoggerOutputPaths defines the config flag of the files or streams to write the logs to.
	CfgLoggerOutputPaths = "logger.outputPaths"
)

func init() {
	flag.String(CfgLoggerLevel, "info", "the minimum enabled logging level")
	flag.String(CfgLoggerEncoding, "console", "the logger's encoding (options: \"json\", \"console\")")
	flag.StringSlice(CfgLoggerOutputPaths, []string{"stdout"}, "a list of URLs or file paths to write logging output to")
}
