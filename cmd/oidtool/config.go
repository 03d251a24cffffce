// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config is the content of an oidtool TOML configuration file.
//
//	defs       = ["rsa.asn1", "ec.yaml"]
//	log_level  = "debug"
//	log_format = "json"
//	well_known = true
type config struct {
	Defs      []string `toml:"defs"`
	LogLevel  string   `toml:"log_level"`
	LogFormat string   `toml:"log_format"`
	WellKnown bool     `toml:"well_known"`
}

// loadConfig reads the configuration file at path.  Relative definition file paths are
// taken relative to the directory of the configuration file.
func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown setting %q", path, undecoded[0].String())
	}

	dir := filepath.Dir(path)
	for i, def := range c.Defs {
		if !filepath.IsAbs(def) {
			c.Defs[i] = filepath.Join(dir, def)
		}
	}

	return &c, nil
}
