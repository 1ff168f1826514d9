// Package version reports the version of wasm2glulx a binary was built from.
package version

import "runtime/debug"

const modulePath = "github.com/tetratelabs/wasm2glulx"

// dev is reported when no module version is recorded, ex. in `go run`.
const dev = "dev"

// Version returns the module version embedded in the build info. It works both
// for the installed command and for programs that import this module.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return dev
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) string {
	if info.Main.Path == modulePath {
		return nonEmpty(info.Main.Version)
	}
	for _, dep := range info.Deps {
		if dep.Path != modulePath {
			continue
		}
		if dep.Replace != nil {
			return nonEmpty(dep.Replace.Version)
		}
		return nonEmpty(dep.Version)
	}
	return dev
}

func nonEmpty(v string) string {
	if v == "" || v == "(devel)" {
		return dev
	}
	return v
}
