package version

import (
	"runtime/debug"
	"strings"
)

const devel = "(devel)"

// String returns the module version of the running binary, or "(devel)" for
// local, dirty and pseudo-versioned builds. Development builds with VCS
// metadata carry the short revision, e.g. "(devel 1a2b3c4)".
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) string {
	v := info.Main.Version
	if v != "" && v != devel && !strings.Contains(v, "+dirty") && !isPseudoVersion(v) {
		return v
	}
	if rev := revision(info.Settings); rev != "" {
		return "(devel " + rev + ")"
	}
	return devel
}

func revision(settings []debug.BuildSetting) string {
	var rev string
	modified := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if rev != "" && modified {
		rev += "+dirty"
	}
	return rev
}

// isPseudoVersion matches the vX.Y.Z-yyyymmddhhmmss-abcdef123456 forms the
// go command synthesizes for untagged commits.
func isPseudoVersion(v string) bool {
	v, _, _ = strings.Cut(v, "+")
	i := strings.LastIndexByte(v, '-')
	if i < 0 {
		return false
	}
	hash := v[i+1:]
	rest := v[:i]
	j := strings.LastIndexAny(rest, "-.")
	if j < 0 {
		return false
	}
	stamp := rest[j+1:]
	return len(stamp) == 14 && strings.Trim(stamp, "0123456789") == "" &&
		len(hash) >= 12 && strings.Trim(strings.ToLower(hash), "0123456789abcdef") == ""
}
