package gracefulshutdown

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/logger"

	"github.com/iotaledger/tritium/plugins/config"
)

// PluginName is the name of the graceful shutdown plugin.
const PluginName = "Graceful Shutdown"

var log *logger.Logger

// Configure shuts the daemon down on SIGINT or SIGTERM. If the background workers do not terminate
// within the configured time, the process is killed.
func Configure() {
	log = logger.NewLogger(PluginName)
	waitToKillTime := config.Node.GetDuration(CfgWaitToKillTime)

	gracefulStop := make(chan os.Signal, 1)
	signal.Notify(gracefulStop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-gracefulStop

		log.Warnf("Received shutdown request - waiting (max %s) to finish processing ...", waitToKillTime)

		go func() {
			start := time.Now()
			for x := range time.Tick(1 * time.Second) {
				sinceStart := x.Sub(start)

				if sinceStart <= waitToKillTime {
					processList := ""
					runningBackgroundWorkers := daemon.GetRunningBackgroundWorkers()
					if len(runningBackgroundWorkers) >= 1 {
						processList = "(" + strings.Join(runningBackgroundWorkers, ", ") + ") "
					}
					log.Warnf("Received shutdown request - waiting (max %s) to finish processing %s...", (waitToKillTime - sinceStart).Round(time.Second), processList)
				} else {
					log.Error("Background processes did not terminate in time! Forcing shutdown ...")
					os.Exit(1)
				}
			}
		}()

		daemon.Shutdown()
	}()
}
