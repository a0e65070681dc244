// Package utils provides helper functions, including version retrieval.
package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
)

const (
	// UnknownVersion is reported when the binary carries no module version.
	UnknownVersion = "unknown"
	develVersion   = "(devel)"
)

// BuildDetails describes the running binary for the info command.
type BuildDetails struct {
	Version        string
	GoVersion      string
	OperatingSys   string
	Architecture   string
	ExecutablePath string
}

// GetApplicationVersion reports the module version embedded in the running binary.
// Binaries built from a checkout carry no module version and report UnknownVersion.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return UnknownVersion
	}
	return versionFromBuildInfo(buildInfo)
}

func versionFromBuildInfo(buildInfo *debug.BuildInfo) string {
	if buildInfo == nil || buildInfo.Main.Version == "" || buildInfo.Main.Version == develVersion {
		return UnknownVersion
	}
	return buildInfo.Main.Version
}

// CollectBuildDetails gathers version and platform information about the running binary.
func CollectBuildDetails() BuildDetails {
	executablePath, executableError := os.Executable()
	if executableError != nil {
		executablePath = UnknownVersion
	} else if resolvedPath, resolveError := filepath.EvalSymlinks(executablePath); resolveError == nil {
		executablePath = resolvedPath
	}
	return BuildDetails{
		Version:        GetApplicationVersion(),
		GoVersion:      runtime.Version(),
		OperatingSys:   runtime.GOOS,
		Architecture:   runtime.GOARCH,
		ExecutablePath: executablePath,
	}
}
