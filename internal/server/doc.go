// Package server exposes the gmsaas operations as MCP tools for AI
// assistants.
//
// The server registers one tool per gmsaas operation (recipe catalog,
// instance lifecycle, ADB connect/disconnect) plus the
// genymotion://os-versions resource, and serves them over the stdio
// transport. Every handler converts internal failures into an in-band error
// result with the operation's context; no handler ever surfaces a Go error
// to the MCP layer, so the caller always receives a response.
package server
