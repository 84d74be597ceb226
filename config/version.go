// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"runtime/debug"
)

// Sets the numeric Astryx version here
const (
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
	VersionMeta  = "unstable"
)

// GetFullVersion gets the current Astryx version with the meta tag and,
// when the binary was built from a repository, the short commit hash.
func GetFullVersion() string {
	version := GetStableVersion() + "-" + VersionMeta
	if commit := vcsRevision(); commit != "" {
		version += "-" + commit
	}
	return version
}

// GetStableVersion gets the stable Astryx version
func GetStableVersion() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, setting := range info.Settings {
		if setting.Key != "vcs.revision" {
			continue
		}
		const shortLength = 8
		if len(setting.Value) > shortLength {
			return setting.Value[:shortLength]
		}
		return setting.Value
	}
	return ""
}
