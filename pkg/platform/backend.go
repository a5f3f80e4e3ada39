package platform

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// BackendInfo identifies a native backend implementation.
type BackendInfo struct {
	Name string
	// Version is a semantic version, with or without the leading "v".
	Version string
}

func (b BackendInfo) String() string {
	return b.Name + " " + canonicalVersion(b.Version)
}

// Backend is a native toolkit binding: a peer factory plus the owner-thread
// dispatcher.
type Backend interface {
	Factory
	Dispatcher
	Info() BackendInfo
}

// CheckBackend returns ErrIncompatibleBackend when info's version is older
// than minVersion. An empty minVersion accepts any backend.
func CheckBackend(info BackendInfo, minVersion string) error {
	if minVersion == "" {
		return nil
	}
	have := canonicalVersion(info.Version)
	want := canonicalVersion(minVersion)
	if !semver.IsValid(want) {
		return fmt.Errorf("invalid minimum backend version %q", minVersion)
	}
	if !semver.IsValid(have) {
		return fmt.Errorf("%w: %s reports invalid version %q", ErrIncompatibleBackend, info.Name, info.Version)
	}
	if semver.Compare(have, want) < 0 {
		return fmt.Errorf("%w: %s is older than %s", ErrIncompatibleBackend, info, want)
	}
	return nil
}

func canonicalVersion(v string) string {
	if v != "" && v[0] != 'v' {
		v = "v" + v
	}
	return v
}
