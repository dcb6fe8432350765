package prometheus

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iotaledger/tritium/packages/pearldiver"
	"github.com/iotaledger/tritium/packages/shutdown"
	"github.com/iotaledger/tritium/plugins/config"
)

// PluginName is the name of the prometheus plugin.
const PluginName = "Prometheus"

var (
	log *logger.Logger

	registry      = prometheus.NewRegistry()
	collectsMutex sync.Mutex
	collects      []func()
	configureOnce sync.Once

	server *http.Server
)

// Configure registers the metrics of the given PoW worker. Only the first call has an effect.
func Configure(worker *pearldiver.PearlDiver) {
	configureOnce.Do(func() {
		registry.MustRegister(prometheus.NewGoCollector())
		registerInfoMetrics()
		registerProcessMetrics()
		registerPoWMetrics(worker)
		registerWorkerpoolMetrics(worker)
	})
}

// Run starts the Prometheus exporter as a background worker of the daemon, if a bind address is
// configured.
func Run() error {
	if log == nil {
		log = logger.NewLogger(PluginName)
	}

	bindAddr := config.Node.GetString(CfgPrometheusBindAddress)
	if bindAddr == "" {
		return nil
	}

	log.Info("Starting Prometheus exporter ...")

	if err := daemon.BackgroundWorker("Prometheus exporter", func(ctx context.Context) {
		log.Info("Starting Prometheus exporter ... done")

		server = &http.Server{Addr: bindAddr, Handler: handler()}

		go func() {
			log.Infof("You can now access the Prometheus exporter using: http://%s/metrics", bindAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("Stopping Prometheus exporter due to an error: %s", err)
			}
		}()

		<-ctx.Done()
		log.Info("Stopping Prometheus exporter ...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error(err.Error())
		}

		log.Info("Stopping Prometheus exporter ... done")
	}, shutdown.PriorityPrometheus); err != nil {
		return errors.Wrap(err, "failed to start Prometheus exporter")
	}
	return nil
}

func handler() http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())

	metricsHandler := promhttp.HandlerFor(
		registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	)
	engine.GET("/metrics", func(c *gin.Context) {
		collect()
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return engine
}

func addCollect(collect func()) {
	collectsMutex.Lock()
	defer collectsMutex.Unlock()

	collects = append(collects, collect)
}

func collect() {
	collectsMutex.Lock()
	defer collectsMutex.Unlock()

	for _, collect := range collects {
		collect()
	}
}
