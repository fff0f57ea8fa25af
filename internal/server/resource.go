package server

import (
	"context"

	"gmotion/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

// OSVersionsResourceURI is the URI of the read-only OS versions resource.
// The catalog behind it is owned by Genymotion SaaS and re-read on every
// request; callers may cache it, this server never does.
const OSVersionsResourceURI = "genymotion://os-versions"

// registerOSVersionsResource registers the genymotion://os-versions resource
// with the MCP server.
func (s *Server) registerOSVersionsResource() {
	resource := mcp.NewResource(
		OSVersionsResourceURI,
		"Available Android OS versions in Genymotion SaaS",
		mcp.WithMIMEType("text/plain"),
	)

	s.mcpServer.AddResource(resource, s.handleOSVersionsResource)
	logging.Info(serverSubsystem, "Registered %s resource", OSVersionsResourceURI)
}

// handleOSVersionsResource handles reads of the os-versions resource. Like
// the tool handlers it always answers with text: a gmsaas failure is
// reported inside the resource contents, not as a protocol fault.
func (s *Server) handleOSVersionsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	text, _ := s.osVersionsText(ctx)
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      OSVersionsResourceURI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}
