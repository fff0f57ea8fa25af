package gmsaas

import (
	"bytes"
	"context"
	"strings"

	"gmotion/pkg/logging"
)

// ConfigureToken installs the Genymotion API token into gmsaas' own
// credential store via `gmsaas auth token`. This is a one-shot bootstrap step
// run before the server accepts any operation. Every failure path is logged
// and non-fatal: operations are still attempted afterwards and will fail
// individually with gmsaas' own authentication error.
func (e *CLIExecutor) ConfigureToken(ctx context.Context, token string) {
	if token == "" {
		logging.Warn(gmsaasSubsystem, "Genymotion API token not found in environment variables")
		return
	}

	logging.Info(gmsaasSubsystem, "Configuring gmsaas API token...")
	cmd := execCommandContext(ctx, e.binary, "auth", "token", token)
	cmd.Env = append(cmd.Environ(), userAgentEnv+"="+userAgentValue)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		message := strings.TrimSpace(stderr.String())
		if message == "" {
			message = strings.TrimSpace(stdout.String())
		}
		logging.Error(gmsaasSubsystem, err, "Error configuring gmsaas API token: %s", message)
		return
	}
	logging.Info(gmsaasSubsystem, "gmsaas API token configured successfully")
}
