package indexer

import (
	"blockindex/pkg/utils/units"
	"log/slog"
	"slices"
)

type BlockSize int

const (
	BlockSize16MB BlockSize = 16 * units.MiB
	BlockSize32MB BlockSize = 32 * units.MiB
	BlockSize64MB BlockSize = 64 * units.MiB
)

var (
	blockSizes   = []BlockSize{BlockSize16MB, BlockSize32MB, BlockSize64MB}
	workerCounts = []int{1, 2, 8}
)

func (s BlockSize) MB() int {
	return int(s) / units.MiB
}

func (s BlockSize) Valid() bool {
	return slices.Contains(blockSizes, s)
}

// ParseBlockSize checks mb against the supported sizes before scaling it,
// so an oversized value cannot wrap around onto a valid one.
func ParseBlockSize(mb int) (BlockSize, error) {
	for _, size := range blockSizes {
		if size.MB() == mb {
			return size, nil
		}
	}
	return 0, configError("block size must be 16, 32, or 64 MB, got %d", mb)
}

func ValidateWorkers(workers int) error {
	if !slices.Contains(workerCounts, workers) {
		return configError("threads must be 1, 2, or 8, got %d", workers)
	}
	return nil
}

// ClampWorkers keeps the legacy behavior of running single-threaded when
// given an unsupported worker count.
func ClampWorkers(workers int) int {
	if err := ValidateWorkers(workers); err != nil {
		slog.Warn("unsupported worker count, falling back to 1", "workers", workers)
		return 1
	}
	return workers
}

type Options struct {
	Workers   int
	BlockSize BlockSize
	// blockBytes overrides BlockSize when set. Only tests use it, to force
	// splits on tiny corpora.
	blockBytes int
}

func DefaultOptions() Options {
	return Options{
		Workers:   1,
		BlockSize: BlockSize16MB,
	}
}

func (o Options) Validate() error {
	if err := ValidateWorkers(o.Workers); err != nil {
		return err
	}
	if o.blockBytes == 0 && !o.BlockSize.Valid() {
		return configError("unsupported block size %d bytes", int(o.BlockSize))
	}
	return nil
}

func (o Options) blockLen() int {
	if o.blockBytes > 0 {
		return o.blockBytes
	}
	return int(o.BlockSize)
}
