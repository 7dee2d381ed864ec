package sys

import (
	"blockindex/pkg/utils/units"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// CreateFile truncates any existing file at filename.
func CreateFile(filename string) (*os.File, error) {
	return os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
}

func LogMemoryUsage(logger *slog.Logger) {
	const MB = units.MB
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	logger.Debug("memory usage",
		"alloc_mb", float64(memStats.Alloc)/MB,
		"stack_sys_mb", float64(memStats.StackSys)/MB,
		"heap_inuse_mb", float64(memStats.HeapInuse)/MB)
}

func WriteMemoryProfile(filename string) error {
	memF, err := CreateFile(filename)
	if err != nil {
		return err
	}
	defer memF.Close()

	return pprof.WriteHeapProfile(memF)
}

// StartTrace begins a runtime trace; the returned func stops it and closes
// the file.
func StartTrace(filename string) (func() error, error) {
	traceF, err := CreateFile(filename)
	if err != nil {
		return nil, err
	}
	if err := trace.Start(traceF); err != nil {
		traceF.Close()
		return nil, err
	}

	return func() error {
		trace.Stop()
		return traceF.Close()
	}, nil
}
