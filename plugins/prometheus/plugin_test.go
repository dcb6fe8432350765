package prometheus

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/logger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/tritium/packages/pearldiver"
	"github.com/iotaledger/tritium/packages/trinary"
)

func TestMain(m *testing.M) {
	if err := logger.InitGlobalLogger(configuration.New()); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}

func randomTransaction() trinary.Trits {
	transaction := make(trinary.Trits, pearldiver.TransactionTrinarySize)
	for i := range transaction {
		transaction[i] = int8(rand.Intn(3) - 1)
	}
	return transaction
}

func TestMetrics(t *testing.T) {
	worker, err := pearldiver.New(pearldiver.WithMaxWorkers(2))
	require.NoError(t, err)
	defer worker.Shutdown()

	Configure(worker)
	// a second call must not register the collectors again
	Configure(worker)

	found, err := worker.Search(randomTransaction(), 3, 2)
	require.NoError(t, err)
	require.True(t, found)

	collect()
	assert.Equal(t, 1.0, testutil.ToFloat64(powSearches.WithLabelValues("completed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(powSearches.WithLabelValues("cancelled")))
	assert.Positive(t, testutil.ToFloat64(powTransforms))
	assert.Equal(t, 0.0, testutil.ToFloat64(powRunning))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = worker.Search(randomTransaction(), pearldiver.HashSize, 2)
	}()

	require.Eventually(t, func() bool {
		return worker.Status() == pearldiver.Running
	}, 5*time.Second, time.Millisecond)
	collect()
	assert.Equal(t, 1.0, testutil.ToFloat64(powRunning))

	worker.Cancel()
	wg.Wait()

	collect()
	assert.Equal(t, 1.0, testutil.ToFloat64(powSearches.WithLabelValues("cancelled")))
	assert.Equal(t, 0.0, testutil.ToFloat64(powRunning))

	recorder := httptest.NewRecorder()
	handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	for _, name := range []string{
		"tritium_pow_searches_total",
		"tritium_pow_search_duration_seconds",
		"tritium_pow_running",
		"tritium_info_app",
		"workerpools_load",
		"process_mem_usage_bytes",
	} {
		assert.Contains(t, body, name)
	}
}

func TestRun_Disabled(t *testing.T) {
	assert.NoError(t, Run())
	assert.Nil(t, server)
}
