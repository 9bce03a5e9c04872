package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, dir, name, content string) string {
	t.Helper()
	filename := filepath.Join(dir, name)
	err := os.WriteFile(filename, []byte(content), 0o600)
	require.NoError(t, err)
	return filename
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	file := writeConf(t, dir, "tool.conf", ""+
		"# a comment\n"+
		"mongo-uri=mongodb://db1:27017/samples\n"+
		"no-version-check\n"+
		"log-level=debug\n")

	conf := NewConfig(file)

	assert.Equal(t, "mongodb://db1:27017/samples", conf.GetString("mongo-uri"))
	assert.Equal(t, "debug", conf.GetString("log-level"))
	assert.True(t, conf.GetBool("no-version-check"))
	assert.False(t, conf.GetBool("clean"))
	assert.False(t, conf.HasKey("clean"))
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	global := writeConf(t, dir, "global.conf", "log-level=error\nmongo-uri=mongodb://global:27017\n")
	local := writeConf(t, dir, "local.conf", "log-level=info\n")

	conf := NewConfig(global, local)

	// the later file wins, untouched keys survive
	assert.Equal(t, "info", conf.GetString("log-level"))
	assert.Equal(t, "mongodb://global:27017", conf.GetString("mongo-uri"))
}

func TestMissingFilesAreSkipped(t *testing.T) {
	conf := NewConfig(filepath.Join(t.TempDir(), "does-not-exist.conf"))

	assert.False(t, conf.HasKey("mongo-uri"))
	assert.Equal(t, "", conf.GetString("mongo-uri"))
}

func TestDefaultConfigFiles(t *testing.T) {
	files, err := DefaultConfigFiles("pt-mongodb-slow-query-check")
	require.NoError(t, err)
	require.Len(t, files, 4)

	assert.Equal(t, "/etc/percona-toolkit/percona-toolkit.conf", files[0])
	assert.Equal(t, "/etc/percona-toolkit/pt-mongodb-slow-query-check.conf", files[1])
}
