package prometheus

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgPrometheusBindAddress defines the config flag of the bind address of the Prometheus exporter.
	CfgPrometheusBindAddress = "prometheus.bindAddress"
)

func init() {
	flag.String(CfgPrometheusBindAddress, "", "the bind address of the Prometheus exporter, empty disables it")
}
