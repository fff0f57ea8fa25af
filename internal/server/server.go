package server

import (
	"context"

	"gmotion/internal/gmsaas"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const serverSubsystem = "Server"

// Server bridges MCP tool calls to the gmsaas CLI. It holds no device state:
// the executor and coordinator re-derive everything from gmsaas on every
// call, so two concurrent calls are no worse than two gmsaas invocations
// racing on the Genymotion side.
type Server struct {
	exec      gmsaas.Executor
	coord     *gmsaas.Coordinator
	mcpServer *mcpserver.MCPServer
}

// New creates the MCP server and registers all gmsaas tools and the
// os-versions resource.
func New(exec gmsaas.Executor, coord *gmsaas.Coordinator, version string) *Server {
	ms := mcpserver.NewMCPServer(
		"Genymotion SaaS MCP Server",
		version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithResourceCapabilities(false, false),
	)

	s := &Server{
		exec:      exec,
		coord:     coord,
		mcpServer: ms,
	}

	s.registerTools()
	s.registerOSVersionsResource()

	return s
}

// Start serves MCP over stdio. It blocks until the transport is closed by
// the client or the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	return mcpserver.ServeStdio(s.mcpServer)
}

// registerTools registers all gmsaas-backed MCP tools
func (s *Server) registerTools() {
	listRecipesTool := mcp.NewTool("list_recipes",
		mcp.WithDescription("List all available Android recipes in Genymotion SaaS"),
	)
	s.mcpServer.AddTool(listRecipesTool, s.handleListRecipes)

	getRecipeDetailsTool := mcp.NewTool("get_recipe_details",
		mcp.WithDescription("Get detailed information about a specific Android recipe"),
		mcp.WithString("recipe_uuid",
			mcp.Required(),
			mcp.Description("UUID of the recipe to inspect"),
		),
	)
	s.mcpServer.AddTool(getRecipeDetailsTool, s.handleGetRecipeDetails)

	listInstancesTool := mcp.NewTool("list_running_instances",
		mcp.WithDescription("List all running Android instances in Genymotion SaaS"),
	)
	s.mcpServer.AddTool(listInstancesTool, s.handleListRunningInstances)

	searchRecipesTool := mcp.NewTool("search_recipes",
		mcp.WithDescription("Search for recipes matching a name or Android version and list them for selection"),
		mcp.WithString("recipe_name",
			mcp.Required(),
			mcp.Description("The name or part of the name to search for"),
		),
	)
	s.mcpServer.AddTool(searchRecipesTool, s.handleSearchRecipes)

	startInstanceTool := mcp.NewTool("start_instance",
		mcp.WithDescription("Start an Android instance from a recipe"),
		mcp.WithString("recipe_uuid",
			mcp.Required(),
			mcp.Description("UUID of the recipe to use"),
		),
		mcp.WithString("instance_name",
			mcp.Required(),
			mcp.Description("Name to give to the new instance"),
		),
	)
	s.mcpServer.AddTool(startInstanceTool, s.handleStartInstance)

	stopInstanceTool := mcp.NewTool("stop_instance",
		mcp.WithDescription("Stop a running Android instance"),
		mcp.WithString("instance_uuid",
			mcp.Required(),
			mcp.Description("UUID of the instance to stop"),
		),
	)
	s.mcpServer.AddTool(stopInstanceTool, s.handleStopInstance)

	connectADBTool := mcp.NewTool("connect_adb",
		mcp.WithDescription("Connect ADB to a running Android instance"),
		mcp.WithString("instance_uuid",
			mcp.Required(),
			mcp.Description("UUID of the instance to connect to"),
		),
		mcp.WithNumber("adb_port",
			mcp.Description("Optional port number for the ADB connection"),
		),
	)
	s.mcpServer.AddTool(connectADBTool, s.handleConnectADB)

	disconnectADBTool := mcp.NewTool("disconnect_adb",
		mcp.WithDescription("Disconnect ADB from a running Android instance"),
		mcp.WithString("instance_uuid",
			mcp.Required(),
			mcp.Description("UUID of the instance to disconnect from"),
		),
	)
	s.mcpServer.AddTool(disconnectADBTool, s.handleDisconnectADB)

	listOSVersionsTool := mcp.NewTool("list_os_versions",
		mcp.WithDescription("List the available Android OS versions"),
	)
	s.mcpServer.AddTool(listOSVersionsTool, s.handleListOSVersions)
}
