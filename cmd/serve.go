package cmd

import (
	"context"
	"fmt"
	"os"

	"gmotion/internal/config"
	"gmotion/internal/gmsaas"
	"gmotion/internal/server"
	"gmotion/pkg/logging"

	"github.com/spf13/cobra"
)

// tokenEnvVar is the environment variable holding the Genymotion API token.
// Its value is installed into gmsaas' own credential store at startup; a
// missing token is logged, not fatal.
const tokenEnvVar = "GENYMOTION_API_TOKEN"

// debug enables verbose logging across the application.
var serveDebug bool

// configPath specifies a custom configuration directory path.
// When set, configuration is loaded from this directory instead of ~/.config/gmotion.
var serveConfigPath string

// gmsaasPath overrides the configured gmsaas binary path for this run.
var serveGmsaasPath string

// serveCmd defines the serve command structure. This is the main command of
// gmotion: it serves the MCP protocol on stdio until the client disconnects.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Genymotion SaaS MCP server on stdio",
	Long: `Starts the MCP server that exposes gmsaas operations as tools for AI
assistants. The protocol is carried over stdin/stdout, so register the
binary directly in your assistant's MCP configuration:

  { "command": "gmotion", "args": ["serve"] }

All log output goes to stderr. Before serving, the Genymotion API token is
read from the GENYMOTION_API_TOKEN environment variable and installed into
gmsaas' own credential store; when the token is missing, the server still
starts and each operation fails individually with gmsaas' authentication
error.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	logLevel := logging.LevelInfo
	if serveDebug {
		logLevel = logging.LevelDebug
	}
	// stdout belongs to the MCP transport; logs must go to stderr.
	logging.Init(logLevel, os.Stderr)

	configPath := serveConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if serveGmsaasPath != "" {
		cfg.Gmsaas.Path = serveGmsaasPath
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	executor := gmsaas.NewCLIExecutor(cfg.Gmsaas.Path)
	executor.ConfigureToken(ctx, os.Getenv(tokenEnvVar))

	coordinator := gmsaas.NewCoordinator(executor, cfg.Gmsaas.SettleInterval())
	srv := server.New(executor, coordinator, GetVersion())

	logging.Info("Serve", "Starting Genymotion SaaS MCP server on stdio")
	return srv.Start(ctx)
}

// init registers the serve command and its flags with the root command.
func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Custom configuration directory path")
	serveCmd.Flags().StringVar(&serveGmsaasPath, "gmsaas-path", "", "Path to the gmsaas binary (overrides configuration)")
}
