package gmsaas

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"gmotion/pkg/logging"
)

const gmsaasSubsystem = "Gmsaas"

const (
	// DefaultBinary is the gmsaas binary name used when no path is configured.
	DefaultBinary = "gmsaas"

	// userAgentEnv tags every invocation so Genymotion's telemetry can tell
	// MCP-originated calls apart from direct CLI usage. It does not change
	// gmsaas behavior.
	userAgentEnv   = "GMSAAS_USER_AGENT_EXTRA_DATA"
	userAgentValue = "mcp"
)

// execCommandContext is a variable to allow mocking in tests
var execCommandContext = exec.CommandContext

// Executor runs gmsaas commands and returns their decoded JSON output.
type Executor interface {
	// Execute runs gmsaas in JSON output mode with the given arguments and
	// returns the decoded payload. The call blocks for the full subprocess
	// lifetime; no timeout is imposed at this layer.
	Execute(ctx context.Context, args ...string) (any, error)
}

// ExecError reports a gmsaas invocation that exited non-zero. Message carries
// the captured stderr, falling back to stdout, falling back to a generic text.
type ExecError struct {
	Message string
}

func (e *ExecError) Error() string {
	return "error executing gmsaas command: " + e.Message
}

// ParseError reports a gmsaas invocation that exited zero but whose stdout
// was not valid JSON. Raw output is never passed off as structured data.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "error parsing command output as JSON"
}

func (e *ParseError) Unwrap() error { return e.Err }

// CLIExecutor is the production Executor backed by the gmsaas binary.
type CLIExecutor struct {
	binary string
}

// NewCLIExecutor creates an executor for the given gmsaas binary name or
// path. A binary missing from PATH is logged but not fatal: every operation
// will then fail individually with its own error.
func NewCLIExecutor(binary string) *CLIExecutor {
	if binary == "" {
		binary = DefaultBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		logging.Warn(gmsaasSubsystem, "gmsaas binary %q not found in PATH: %v", binary, err)
	}
	return &CLIExecutor{binary: binary}
}

// Execute implements Executor. It prepends the JSON output flag, leaves the
// remaining arguments untouched, and classifies the outcome as decoded
// payload, ExecError or ParseError.
func (e *CLIExecutor) Execute(ctx context.Context, args ...string) (any, error) {
	full := append([]string{"--format", "json"}, args...)
	logging.Debug(gmsaasSubsystem, "Running: %s %s", e.binary, strings.Join(full, " "))

	cmd := execCommandContext(ctx, e.binary, full...)
	cmd.Env = append(cmd.Environ(), userAgentEnv+"="+userAgentValue)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logging.Debug(gmsaasSubsystem, "gmsaas exited with error: %v", err)
		message := strings.TrimSpace(stderr.String())
		if message == "" {
			message = strings.TrimSpace(stdout.String())
		}
		if message == "" {
			message = "command failed"
		}
		return nil, &ExecError{Message: message}
	}

	var payload any
	if err := json.Unmarshal(stdout.Bytes(), &payload); err != nil {
		return nil, &ParseError{Err: err}
	}
	return payload, nil
}
