// Package config loads figma-render settings from a TOML file. Command-line
// flags override file values; the file exists so tokens and addresses don't
// have to be repeated on every invocation.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the figma-render configuration.
type Config struct {
	// Token is the default Figma personal access token. The FIGMA_TOKEN
	// environment variable and the --token flag both override it.
	Token  string `toml:"token"`
	Server Server `toml:"server"`
	Output Output `toml:"output"`
}

// Server configures the HTTP surface started by `figma-render serve`.
type Server struct {
	Addr string `toml:"addr"`
}

// Output configures where the CLI writes conversion results.
type Output struct {
	File  string `toml:"file"`
	Title string `toml:"title"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: Server{Addr: ":8080"},
		Output: Output{File: "figma-render.html"},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
