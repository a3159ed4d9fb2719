package sysinfo

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

const bytesPerGB = 1024 * 1024 * 1024

// MemoryGB returns the resident set size of the current process in gigabytes,
// rounded to two decimal places.
func MemoryGB(ctx context.Context) (float64, error) {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return 0, fmt.Errorf("open process: %w", err)
	}

	info, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("read memory info: %w", err)
	}

	return RoundGB(info.RSS), nil
}

// RoundGB converts bytes to gigabytes rounded to two decimal places.
func RoundGB(bytes uint64) float64 {
	return math.Round(float64(bytes)/bytesPerGB*100) / 100
}

// FormatGB renders a gigabyte value the way the memory endpoint reports it.
func FormatGB(gb float64) string {
	return fmt.Sprintf("%.2f GB", gb)
}
