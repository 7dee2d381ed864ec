package config

import (
	"blockindex/pkg/indexer"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, 16, cfg.BlockSizeMB)
	require.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.Equal(t, indexer.BlockSize16MB, opts.BlockSize)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordcount.yaml")
	data := []byte(`
workers: 2
blockSizeMB: 32
source: corpus.txt
index: corpus.idx
logging:
  level: debug
  format: json
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	t.Setenv("WC_WORKERS", "8")
	t.Setenv("WC_METRICS_ADDR", ":9100")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, 32, cfg.BlockSizeMB)
	require.Equal(t, "corpus.txt", cfg.Source)
	require.Equal(t, "corpus.idx", cfg.Index)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, ":9100", cfg.Metrics.Addr)
	require.Equal(t, 256, cfg.CacheSize)

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.Equal(t, indexer.Options{Workers: 8, BlockSize: indexer.BlockSize32MB}, opts)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("WC_WORKERS", "many")
	_, err = Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	cfg.Workers = 4
	require.ErrorIs(t, cfg.Validate(), indexer.ErrConfig)

	cfg = defaultConfig()
	cfg.BlockSizeMB = 8
	require.ErrorIs(t, cfg.Validate(), indexer.ErrConfig)

	cfg = defaultConfig()
	cfg.BlockSizeMB = 16 + 1<<44
	require.ErrorIs(t, cfg.Validate(), indexer.ErrConfig)

	cfg = defaultConfig()
	cfg.CacheSize = 0
	require.ErrorIs(t, cfg.Validate(), indexer.ErrConfig)
}
