package pdoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultReceivableAccount is the ledger account debited by invoice
// exports when the config does not name one.
const DefaultReceivableAccount = "Assets:AccountsReceivable"

// Config is the optional operator configuration, read from a TOML file
// at a platform-standard location.
type Config struct {
	// DataDir overrides the data root. Tilde-expanded; must resolve to
	// an absolute path.
	DataDir string `toml:"data_dir"`
	// ReceivableAccount overrides the account debited in ledger exports.
	ReceivableAccount string `toml:"receivable_account"`
}

// ConfigPath returns the location of the config file.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config directory: %w", err)
	}
	return filepath.Join(dir, "pdoc", "config.toml"), nil
}

// LoadConfig reads the config file. A missing file yields the zero
// Config; a malformed one is an error.
func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	return cfg, nil
}

// DataRoot resolves the directory all entity files live under: the
// configured data_dir if present, else a per-user application
// directory.
func (c Config) DataRoot() (string, error) {
	if c.DataDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("getting default data directory: %w", err)
		}
		return filepath.Join(dir, "pdoc"), nil
	}
	dir, err := expandTilde(c.DataDir)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(dir) {
		return "", fmt.Errorf("configured data_dir %q is not an absolute path", c.DataDir)
	}
	return dir, nil
}

// Receivable returns the account debited in ledger exports.
func (c Config) Receivable() string {
	if c.ReceivableAccount == "" {
		return DefaultReceivableAccount
	}
	return c.ReceivableAccount
}

// expandTilde replaces a leading "~" with the user's home directory.
func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
