// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"io"

	"github.com/naoina/toml"
)

// ExportTOML writes the configuration as TOML to w.
func (c *Config) ExportTOML(w io.Writer) error {
	raw, err := toml.Marshal(*c)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	_, err = w.Write(raw)
	return err
}
