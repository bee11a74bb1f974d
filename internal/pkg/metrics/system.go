package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const systemInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portal_system_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portal_system_memory_usage_bytes",
			Help: "Host memory usage in bytes",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portal_heap_alloc_bytes",
			Help: "Go heap allocation of the portal process",
		},
	)
)

// StartSystemCollector снимает метрики хоста до отмены ctx.
func StartSystemCollector(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(systemInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystem(ctx)
			}
		}
	}()
}

func collectSystem(ctx context.Context) {
	if usage, err := cpu.PercentWithContext(ctx, time.Second, false); err == nil && len(usage) > 0 {
		SystemCPUUsage.Set(usage[0])
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		SystemMemoryUsage.Set(float64(vm.Used))
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	HeapAlloc.Set(float64(stats.Alloc))
}
