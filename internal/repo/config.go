package repo

import (
	"gopkg.in/ini.v1"

	"github.com/levijpuckett/wyag/internal/wyagerr"
)

// Config wraps the repository's parsed .git/config in a small typed
// facade over the raw file, validated once at load time rather than
// re-checked on every read.
type Config struct {
	file *ini.File
}

// defaultConfig returns the config written by Init: core.repositoryformatversion=0,
// filemode=false, bare=false.
func defaultConfig() *Config {
	f := ini.Empty()
	core, _ := f.NewSection("core")
	core.NewKey("repositoryformatversion", "0")
	core.NewKey("filemode", "false")
	core.NewKey("bare", "false")
	return &Config{file: f}
}

// loadConfig parses the config file at path and validates
// core.repositoryformatversion == 0.
func loadConfig(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, wyagerr.Wrap(wyagerr.CodeConfigMissing, path, err)
	}

	c := &Config{file: f}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if !c.file.Section("core").HasKey("repositoryformatversion") {
		return wyagerr.New(wyagerr.CodeBadVersion, "missing core.repositoryformatversion")
	}
	v := c.file.Section("core").Key("repositoryformatversion").MustInt(-1)
	if v != 0 {
		return wyagerr.New(wyagerr.CodeBadVersion, c.file.Section("core").Key("repositoryformatversion").String())
	}
	return nil
}

// FileMode reports core.filemode.
func (c *Config) FileMode() bool {
	return c.file.Section("core").Key("filemode").MustBool(false)
}

// Bare reports core.bare.
func (c *Config) Bare() bool {
	return c.file.Section("core").Key("bare").MustBool(false)
}

// UserName returns user.name, if set.
func (c *Config) UserName() (string, bool) {
	k := c.file.Section("user").Key("name")
	if k.String() == "" {
		return "", false
	}
	return k.String(), true
}

// UserEmail returns user.email, if set.
func (c *Config) UserEmail() (string, bool) {
	k := c.file.Section("user").Key("email")
	if k.String() == "" {
		return "", false
	}
	return k.String(), true
}

// SaveTo writes the config file to path.
func (c *Config) SaveTo(path string) error {
	if err := c.file.SaveTo(path); err != nil {
		return wyagerr.Wrap(wyagerr.CodeIO, path, err)
	}
	return nil
}
