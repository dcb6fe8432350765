package prometheus

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/cpu"
)

var (
	cpuUsage      prometheus.Gauge
	memUsageBytes prometheus.Gauge
)

func registerProcessMetrics() {
	cpuUsage = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "process_cpu_usage",
		Help: "CPU (System) usage since the last scrape.",
	})
	memUsageBytes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "process_mem_usage_bytes",
		Help: "memory usage [bytes].",
	})

	registry.MustRegister(cpuUsage)
	registry.MustRegister(memUsageBytes)

	addCollect(collectProcessMetrics)
}

func collectProcessMetrics() {
	// an interval of 0 compares against the previous call
	if percent, err := cpu.Percent(0, false); err == nil && len(percent) > 0 {
		cpuUsage.Set(percent[0])
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	memUsageBytes.Set(float64(m.Alloc))
}
