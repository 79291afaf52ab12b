package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	yaml := `app:
  environment: production

server:
  port: "9090"

mongo:
  url: mongodb://mongo:27017
  database: camera_test
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "9090", cfg.Server.HttpPort)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URL)
	assert.Equal(t, "camera_test", cfg.Mongo.Database)
}

func TestLoadMissingFile(t *testing.T) {
	viper.Reset()
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
