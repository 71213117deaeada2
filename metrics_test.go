package bitmap

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	m.RecordTurnOn(10*time.Nanosecond, nil)
	m.RecordTurnOn(30*time.Nanosecond, errors.New("boom"))
	m.RecordQuery(true, 4*time.Nanosecond, nil)
	m.RecordQuery(false, 2*time.Nanosecond, nil)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.TurnOnCount)
	assert.Equal(t, int64(1), stats.TurnOnErrors)
	assert.Equal(t, int64(20), stats.TurnOnAvgNanos)
	assert.Equal(t, int64(1), stats.QueryHits)
	assert.Equal(t, int64(3), stats.QueryAvgNanos)
	assert.Zero(t, stats.TurnOffCount)
	assert.Zero(t, stats.TurnOffAvgNanos)
}

func TestBasicMetricsCollector_TurnOff(t *testing.T) {
	var m BasicMetricsCollector

	m.RecordTurnOff(6*time.Nanosecond, nil)
	m.RecordTurnOff(12*time.Nanosecond, errors.New("boom"))

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.TurnOffCount)
	assert.Equal(t, int64(1), stats.TurnOffErrors)
	assert.Equal(t, int64(9), stats.TurnOffAvgNanos)
}

func TestBasicMetricsCollector_ConcurrentGrowth(t *testing.T) {
	var m BasicMetricsCollector

	var wg sync.WaitGroup
	for i := 1; i <= 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordChainGrowth(i)
		}()
	}
	wg.Wait()

	stats := m.GetStats()
	assert.Equal(t, int64(32), stats.ChainGrowths)
	assert.Equal(t, int64(32), stats.MaxBitmapCount)
}
