// Package terminal detects whether the current process is talking to an
// interactive terminal or running under CI, so the commands can pick an
// appropriate log output format.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars lists environment variables whose presence marks a CI system.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",
}

// IsInteractive reports whether the process should behave interactively:
// not in CI, and with stdout and stderr connected to a terminal.
func IsInteractive() bool {
	if IsCIEnvironment() {
		return false
	}
	return IsTerminal()
}

// IsTerminal reports whether stdout and stderr are connected to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// IsCIEnvironment reports whether the current environment is a CI/CD system.
func IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		// CI=false or CI=0 opts out explicitly.
		if envVar == "CI" {
			return isTruthy(value)
		}
		return true
	}
	return false
}

func isTruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no"
}
