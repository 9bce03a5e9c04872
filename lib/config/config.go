package config

import (
	"os/user"
	"strings"

	"github.com/go-ini/ini"
)

// Config holds the merged contents of the tool's configuration files.
type Config struct {
	file *ini.File
}

func (c *Config) GetString(key string) string {
	if !c.HasKey(key) {
		return ""
	}
	return c.file.Section("").Key(key).String()
}

func (c *Config) GetInt64(key string) int64 {
	if !c.HasKey(key) {
		return 0
	}
	return c.file.Section("").Key(key).MustInt64(0)
}

func (c *Config) GetBool(key string) bool {
	if !c.HasKey(key) {
		return false
	}
	// a bare key with no value means the option is enabled
	val := c.file.Section("").Key(key).Value()
	if val == "" {
		return true
	}
	return c.file.Section("").Key(key).MustBool(false)
}

func (c *Config) HasKey(key string) bool {
	return c.file.Section("").HasKey(key)
}

// DefaultConfigFiles returns the files read for a tool, in load order.
// Values in later files override earlier ones.
func DefaultConfigFiles(toolName string) ([]string, error) {
	user, err := user.Current()
	if err != nil {
		return nil, err
	}

	files := []string{
		"/etc/percona-toolkit/percona-toolkit.conf",
		"/etc/percona-toolkit/${TOOLNAME}.conf",
		"${HOME}/.percona-toolkit.conf",
		"${HOME}/.${TOOLNAME}.conf",
	}

	for i := 0; i < len(files); i++ {
		files[i] = strings.Replace(files[i], "${TOOLNAME}", toolName, -1)
		files[i] = strings.Replace(files[i], "${HOME}", user.HomeDir, -1)
	}

	return files, nil
}

func DefaultConfig(toolName string) *Config {
	files, err := DefaultConfigFiles(toolName)
	if err != nil {
		return &Config{file: ini.Empty()}
	}
	return NewConfig(files...)
}

// NewConfig reads and merges the given files. Missing files are skipped.
func NewConfig(files ...string) *Config {
	opts := ini.LoadOptions{
		Loose:            true,
		AllowBooleanKeys: true,
	}

	sources := make([]interface{}, 0, len(files))
	for _, f := range files {
		sources = append(sources, f)
	}

	if len(sources) == 0 {
		return &Config{file: ini.Empty()}
	}

	file, err := ini.LoadSources(opts, sources[0], sources[1:]...)
	if err != nil {
		return &Config{file: ini.Empty()}
	}
	return &Config{file: file}
}
