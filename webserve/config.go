package webserve

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// DefaultPort is the port the frontend expects the dev server on.
	DefaultPort = 13883
	// DefaultDir is the build output directory next to the binary.
	DefaultDir = "src"
)

// Config holds the server settings. It is built once at startup and
// never mutated afterwards.
type Config struct {
	Port int
	Dir  string
}

func DefaultConfig() Config {
	return Config{Port: DefaultPort, Dir: DefaultDir}
}

// Addr returns the listen address, binding all interfaces.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// resolveDir resolves the configured directory to an absolute path and
// verifies it exists before any socket is opened.
func (c Config) resolveDir() (string, error) {
	abs, err := filepath.Abs(c.Dir)
	if err != nil {
		return "", errors.Wrap(err, "unable to resolve root directory")
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrapf(err, "unable to open root directory %s", abs)
	}
	if !info.IsDir() {
		return "", errors.Errorf("root path %s is not a directory", abs)
	}
	return abs, nil
}
