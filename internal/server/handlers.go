package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gmotion/internal/formatting"
	"gmotion/internal/gmsaas"
	"gmotion/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleListRecipes handles the list_recipes MCP tool. An empty catalog is a
// valid answer with its own fixed text, not an error.
func (s *Server) handleListRecipes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.exec.Execute(ctx, "recipes", "list")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error listing recipes: %v", err)), nil
	}
	return mcp.NewToolResultText(formatting.RecipeList(result)), nil
}

// handleGetRecipeDetails handles the get_recipe_details MCP tool. The full
// structured payload is returned as indented JSON; a not-found recipe
// surfaces as the propagated gmsaas error text.
func (s *Server) handleGetRecipeDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recipeUUID, err := request.RequireString("recipe_uuid")
	if err != nil {
		return mcp.NewToolResultError("recipe_uuid argument is required"), nil
	}

	result, err := s.exec.Execute(ctx, "recipes", "get", recipeUUID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting recipe details: %v", err)), nil
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting recipe details: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleListRunningInstances handles the list_running_instances MCP tool.
func (s *Server) handleListRunningInstances(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.exec.Execute(ctx, "instances", "list")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error listing instances: %v", err)), nil
	}
	return mcp.NewToolResultText(formatting.InstanceList(result)), nil
}

// handleSearchRecipes handles the search_recipes MCP tool. The query is
// matched case-insensitively against both the recipe name and its Android
// version; a recipe matching on either field is included once. When nothing
// matches, the full catalog is appended so the caller can still pick a
// recipe.
func (s *Server) handleSearchRecipes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("recipe_name")
	if err != nil {
		return mcp.NewToolResultError("recipe_name argument is required"), nil
	}

	result, err := s.exec.Execute(ctx, "recipes", "list")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error searching recipes: %v", err)), nil
	}

	recipes, ok := gmsaas.AsList(result)
	if !ok || len(recipes) == 0 {
		return mcp.NewToolResultText("No recipes found."), nil
	}

	needle := strings.ToLower(query)
	var matches []gmsaas.Object
	for _, recipe := range recipes {
		// Matching reads raw values: the Unknown placeholder is a rendering
		// concern and must not make absent fields searchable.
		name := strings.ToLower(recipe.FieldOr("name", ""))
		version := strings.ToLower(recipe.FieldOr("android_version", ""))
		if strings.Contains(name, needle) || strings.Contains(version, needle) {
			matches = append(matches, recipe)
		}
	}

	if len(matches) == 0 {
		return mcp.NewToolResultText(formatting.SearchNoMatches(query, result)), nil
	}
	return mcp.NewToolResultText(formatting.SearchResults(query, matches)), nil
}

// handleStartInstance handles the start_instance MCP tool.
func (s *Server) handleStartInstance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recipeUUID, err := request.RequireString("recipe_uuid")
	if err != nil {
		return mcp.NewToolResultError("recipe_uuid argument is required"), nil
	}
	instanceName, err := request.RequireString("instance_name")
	if err != nil {
		return mcp.NewToolResultError("instance_name argument is required"), nil
	}

	instance, err := s.coord.Start(ctx, recipeUUID, instanceName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error starting instance: %v", err)), nil
	}

	logging.Info(serverSubsystem, "Started instance %s from recipe %s", instance.Field("uuid"), recipeUUID)
	return mcp.NewToolResultText(formatting.StartResult(instanceName, instance)), nil
}

// handleStopInstance handles the stop_instance MCP tool. The confirmation is
// keyed on the caller's uuid regardless of what the stop response contains.
func (s *Server) handleStopInstance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceUUID, err := request.RequireString("instance_uuid")
	if err != nil {
		return mcp.NewToolResultError("instance_uuid argument is required"), nil
	}

	if err := s.coord.Stop(ctx, instanceUUID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error stopping instance: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Instance %s stopped successfully.", instanceUUID)), nil
}

// handleConnectADB handles the connect_adb MCP tool.
func (s *Server) handleConnectADB(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceUUID, err := request.RequireString("instance_uuid")
	if err != nil {
		return mcp.NewToolResultError("instance_uuid argument is required"), nil
	}

	var adbPort *int
	if raw, ok := request.GetArguments()["adb_port"].(float64); ok {
		port := int(raw)
		adbPort = &port
	}

	serial, err := s.coord.ConnectADB(ctx, instanceUUID, adbPort)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error connecting ADB: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("ADB connected to %s. Use ADB serial: %s", instanceUUID, serial)), nil
}

// handleDisconnectADB handles the disconnect_adb MCP tool. Disconnecting is
// idempotent at this layer: there is no tracked prior state to contradict.
func (s *Server) handleDisconnectADB(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceUUID, err := request.RequireString("instance_uuid")
	if err != nil {
		return mcp.NewToolResultError("instance_uuid argument is required"), nil
	}

	if err := s.coord.DisconnectADB(ctx, instanceUUID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error disconnecting ADB: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("ADB disconnected from %s.", instanceUUID)), nil
}

// handleListOSVersions handles the list_os_versions MCP tool.
func (s *Server) handleListOSVersions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := s.osVersionsText(ctx)
	if err != nil {
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}

// osVersionsText builds the OS versions listing shared by the
// list_os_versions tool and the genymotion://os-versions resource. On
// failure the returned text already carries the operation context.
func (s *Server) osVersionsText(ctx context.Context) (string, error) {
	result, err := s.exec.Execute(ctx, "osimages", "list")
	if err != nil {
		return fmt.Sprintf("Error listing OS versions: %v", err), err
	}
	return formatting.OSVersions(result), nil
}
