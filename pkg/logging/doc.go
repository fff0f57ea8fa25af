// Package logging provides leveled, subsystem-tagged logging for gmotion.
//
// The MCP protocol owns stdout, so the server must never write log output
// there. Callers initialize the package once at startup with a writer of
// their choice (the serve command passes stderr) and then log through the
// package-level Debug, Info, Warn and Error functions, each tagged with the
// subsystem that produced the entry.
package logging
