package utils

import (
	"log/slog"

	"github.com/shirou/gopsutil/v4/cpu"
)

// GetCPUUsage returns host CPU usage as a percentage since the previous call.
// The first call after start reports usage since boot.
func GetCPUUsage() float64 {
	percentage, err := cpu.Percent(0, false)
	if err != nil {
		slog.Warn("cpu usage unavailable", "error", err)
		return 0
	}
	if len(percentage) == 0 {
		return 0
	}
	ProcessCPUPercent.Set(percentage[0])
	return percentage[0]
}
