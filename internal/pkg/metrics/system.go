package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const collectInterval = 5 * time.Second

var (
	CPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cliver_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	MemoryUsed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cliver_memory_used_bytes",
			Help: "Host memory in use",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cliver_heap_alloc_bytes",
			Help: "Go heap allocated by the mission service",
		},
	)
)

// StartCollector снимает системные показатели раз в collectInterval
// до конца жизни процесса.
func StartCollector() {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for range ticker.C {
			collect()
		}
	}()
}

func collect() {
	cpuPercent, err := cpu.Percent(time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		CPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemory()
	if err == nil {
		MemoryUsed.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	HeapAlloc.Set(float64(m.Alloc))
}
