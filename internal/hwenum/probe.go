package hwenum

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/laobamac/SimpleToolkit/internal/errors"
	"github.com/laobamac/SimpleToolkit/internal/logging"
)

const gb = 1024 * 1024 * 1024

// SystemInfo holds the informational rows of a compatibility report: the
// parts of the machine that are described rather than matched against a
// support database.
type SystemInfo struct {
	CPUModel   string
	CPUCores   int
	MemoryGB   float64
	Platform   string
	Hostname   string
	Partitions []PartitionInfo
}

// PartitionInfo is one mounted filesystem.
type PartitionInfo struct {
	Device     string
	Mountpoint string
	Fstype     string
	TotalGB    float64
}

// LocalProber collects SystemInfo from the running machine. Individual
// collectors that fail are logged and skipped so a partial probe still
// produces a report.
type LocalProber struct {
	logger logging.Logger
}

// NewLocalProber returns a prober logging collection failures to logger.
func NewLocalProber(logger logging.Logger) *LocalProber {
	return &LocalProber{logger: logger}
}

// Probe gathers system information. It fails only when every collector
// fails; partial results are returned otherwise.
func (p *LocalProber) Probe(ctx context.Context) (SystemInfo, error) {
	const op = "hwenum.LocalProber.Probe"
	var info SystemInfo
	var collected bool

	if infos, err := cpu.InfoWithContext(ctx); err != nil {
		p.logger.Warn("cpu probe failed", "error", err)
	} else if len(infos) > 0 {
		info.CPUModel = infos[0].ModelName
		collected = true
	}
	if count, err := cpu.CountsWithContext(ctx, true); err != nil {
		p.logger.Warn("cpu count probe failed", "error", err)
	} else {
		info.CPUCores = count
		collected = true
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		p.logger.Warn("memory probe failed", "error", err)
	} else {
		info.MemoryGB = float64(vm.Total) / gb
		collected = true
	}

	if hi, err := host.InfoWithContext(ctx); err != nil {
		p.logger.Warn("host probe failed", "error", err)
	} else {
		info.Hostname = hi.Hostname
		info.Platform = fmt.Sprintf("%s %s", hi.Platform, hi.PlatformVersion)
		collected = true
	}

	if parts, err := disk.PartitionsWithContext(ctx, false); err != nil {
		p.logger.Warn("disk probe failed", "error", err)
	} else {
		for _, part := range parts {
			pi := PartitionInfo{
				Device:     part.Device,
				Mountpoint: part.Mountpoint,
				Fstype:     part.Fstype,
			}
			if usage, err := disk.UsageWithContext(ctx, part.Mountpoint); err == nil {
				pi.TotalGB = float64(usage.Total) / gb
			}
			info.Partitions = append(info.Partitions, pi)
		}
		collected = true
	}

	if !collected {
		return SystemInfo{}, errors.New(errors.Enumeration, "no system information available").WithOp(op)
	}
	return info, nil
}
