package io

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/model"
)

func TestConfigYAMLRepository_GetConfig(t *testing.T) {
	tests := map[string]struct {
		fs     fstest.MapFS
		path   string
		expCfg model.AppConfig
		expErr bool
		errMsg string
	}{
		"A full config should load successfully": {
			fs: fstest.MapFS{
				"taskdeck.yaml": &fstest.MapFile{
					Data: []byte(`store:
  backend: sqlite
  path: /tmp/taskdeck.db
logger:
  type: json
  debug: true
`),
				},
			},
			path: "taskdeck.yaml",
			expCfg: model.AppConfig{
				Store: model.StoreConfig{
					Backend: model.StoreBackendSQLite,
					Path:    "/tmp/taskdeck.db",
				},
				Logger: model.LoggerConfig{
					Type:  "json",
					Debug: true,
				},
			},
		},

		"A partial config should keep zero values for the rest": {
			fs: fstest.MapFS{
				"taskdeck.yaml": &fstest.MapFile{
					Data: []byte(`store:
  backend: memory
`),
				},
			},
			path: "taskdeck.yaml",
			expCfg: model.AppConfig{
				Store: model.StoreConfig{Backend: model.StoreBackendMemory},
			},
		},

		"An empty config should load successfully": {
			fs: fstest.MapFS{
				"empty.yaml": &fstest.MapFile{
					Data: []byte("---\n"),
				},
			},
			path:   "empty.yaml",
			expCfg: model.AppConfig{},
		},

		"A missing file should return an error": {
			fs:     fstest.MapFS{},
			path:   "nonexistent.yaml",
			expErr: true,
			errMsg: "reading config file",
		},

		"Invalid YAML should return an error": {
			fs: fstest.MapFS{
				"invalid.yaml": &fstest.MapFile{
					Data: []byte(`store: backend: sqlite: {}`),
				},
			},
			path:   "invalid.yaml",
			expErr: true,
			errMsg: "parsing YAML",
		},

		"An unknown store backend should return an error": {
			fs: fstest.MapFS{
				"taskdeck.yaml": &fstest.MapFile{
					Data: []byte(`store:
  backend: redis
`),
				},
			},
			path:   "taskdeck.yaml",
			expErr: true,
			errMsg: "unknown store backend",
		},

		"An unknown logger type should return an error": {
			fs: fstest.MapFS{
				"taskdeck.yaml": &fstest.MapFile{
					Data: []byte(`logger:
  type: xml
`),
				},
			},
			path:   "taskdeck.yaml",
			expErr: true,
			errMsg: "unknown logger type",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			repo := NewConfigYAMLRepository(tc.fs)
			cfg, err := repo.GetConfig(context.Background(), tc.path)

			if tc.expErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expCfg, cfg)
		})
	}
}

func TestConfigYAMLRepository_GetConfig_ContextCancellation(t *testing.T) {
	fs := fstest.MapFS{
		"taskdeck.yaml": &fstest.MapFile{
			Data: []byte("store:\n  backend: memory\n"),
		},
	}

	repo := NewConfigYAMLRepository(fs)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := repo.GetConfig(ctx, "taskdeck.yaml")
	require.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}
