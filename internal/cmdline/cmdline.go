// Package cmdline builds the command line that enters a guest environment
// through the host bridge and runs a program there.
//
// Arguments are escaped for the shell inside the guest, not for the host: each
// one is double quoted with $, `, " and \ backslash-escaped, which is what a
// POSIX shell needs to read the quoted word back unchanged.
package cmdline

import (
	"strings"
)

// CommandLine is a complete, escaped bridge invocation.
type CommandLine string

func (c CommandLine) String() string {
	return string(c)
}

// Bridge describes the host command used to enter a guest environment.
type Bridge struct {
	Path            string
	EnvironmentFlag string
	UserFlag        string
	DirFlag         string
}

// DefaultBridge returns the WSL bridge. wsl.exe only exists as a 64-bit
// binary, so the path names System32 directly.
func DefaultBridge() Bridge {
	return Bridge{
		Path:            `C:\Windows\system32\wsl.exe`,
		EnvironmentFlag: "-d",
		UserFlag:        "-u",
		DirFlag:         "--cd",
	}
}

// Build returns the command line that runs args[0] with args[1:] as user
// inside environment, starting in workingDir when the bridge can express it.
func Build(bridge Bridge, environment, user, workingDir string, args []string) CommandLine {
	parts := []string{
		bridge.Path,
		bridge.EnvironmentFlag, environment,
		bridge.UserFlag, user,
	}
	if opt := DirOption(bridge, workingDir); opt != "" {
		parts = append(parts, opt)
	}
	if joined := Join(args); joined != "" {
		parts = append(parts, joined)
	}
	return CommandLine(strings.Join(parts, " "))
}

// DirOption returns the working directory option for dir, or "" when it must
// be left out.
//
// A directory containing both a space and a double quote cannot be passed to
// wsl.exe --cd at all (microsoft/WSL#8712). The option is omitted and the
// child starts in the environment's default directory.
func DirOption(bridge Bridge, dir string) string {
	if !strings.Contains(dir, " ") {
		return bridge.DirFlag + " " + dir
	}
	if strings.Contains(dir, `"`) {
		return ""
	}
	return bridge.DirFlag + ` "` + dir + `"`
}

// Escape double quotes arg, backslash-escaping the characters that stay
// special inside double quotes.
func Escape(arg string) string {
	var b strings.Builder
	b.Grow(len(arg) + 2)
	b.WriteByte('"')
	for i := 0; i < len(arg); i++ {
		switch c := arg[i]; c {
		case '$', '`', '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Join escapes each argument and joins them with single spaces, preserving
// count and order.
func Join(args []string) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Escape(arg))
	}
	return b.String()
}
