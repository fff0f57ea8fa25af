// Package gmsaas wraps the Genymotion SaaS command-line tool.
//
// The package is the command execution and result-normalization layer of
// gmotion. It holds no state of its own: every piece of catalog or instance
// information is read fresh from the output of a gmsaas invocation, and the
// Genymotion SaaS backend remains the single source of truth for instance
// lifecycle. The Coordinator sequences the multi-step instance operations
// (start, ADB connect/disconnect, stop), including the re-read that resolves
// an ADB serial the adbconnect response did not yet carry.
package gmsaas
