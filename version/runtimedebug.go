package version

import (
	"errors"
	"runtime/debug"
)

// Unknown is reported when the binary carries no module version.
const Unknown = "unknown"

const modulePath = "github.com/anoideaopen/reflection"

var (
	ErrBuildInfoUnavailable = errors.New("fetching build info failed")
	ErrBuildInfoEmpty       = errors.New("build information is empty")
)

// BuildInfo returns the build information
func BuildInfo() (*debug.BuildInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrBuildInfoUnavailable
	}

	if bi == nil {
		return nil, ErrBuildInfoEmpty
	}

	return bi, nil
}

// Version returns the version of this module as linked into the running
// binary: the main module version when it is the main module, the dependency
// version otherwise, Unknown when neither is recorded.
func Version() string {
	bi, err := BuildInfo()
	if err != nil {
		return Unknown
	}

	return moduleVersion(bi)
}

func moduleVersion(bi *debug.BuildInfo) string {
	if bi.Main.Path == modulePath {
		return normalize(bi.Main.Version)
	}

	for _, dep := range bi.Deps {
		if dep.Path != modulePath {
			continue
		}
		if dep.Replace != nil {
			return normalize(dep.Replace.Version)
		}
		return normalize(dep.Version)
	}

	return Unknown
}

func normalize(v string) string {
	if v == "" || v == "(devel)" {
		return Unknown
	}

	return v
}
