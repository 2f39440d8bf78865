package cmdline

import (
	"fmt"

	"mvdan.cc/sh/v3/shell"
)

// Split tokenizes line the way the guest shell reads it. Variable references
// outside quotes expand to nothing; quoted text is taken literally.
func Split(line CommandLine) ([]string, error) {
	fields, err := shell.Fields(string(line), noEnv)
	if err != nil {
		return nil, fmt.Errorf("split command line: %w", err)
	}
	return fields, nil
}

func noEnv(string) string {
	return ""
}
