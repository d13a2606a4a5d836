// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoUnknown = "N/A"

// AppBuildInfo is the build metadata injected into binaries by linker flags.
// Missing values read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the linker-provided values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return buildInfoUnknown
	}
	return s
}

// Known reports whether a version was injected at build time.
func (a AppBuildInfo) Known() bool {
	return a.version != "" && a.version != buildInfoUnknown
}

func (a AppBuildInfo) Version() string { return a.version }
func (a AppBuildInfo) Date() string    { return a.date }
func (a AppBuildInfo) Commit() string  { return a.commit }

// String formats the metadata on one line.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (date: %s, commit: %s)", a.version, a.date, a.commit)
}
