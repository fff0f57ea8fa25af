// Package config provides configuration management for gmotion.
//
// Configuration is loaded from a single YAML file. The default location is
// ~/.config/gmotion/config.yaml, but users can specify a custom directory
// using the --config-path flag of the serve command. A missing file is not an
// error; the defaults apply. A malformed file is an error.
//
// The Genymotion API token is deliberately not part of the configuration
// file: it is read from the GENYMOTION_API_TOKEN environment variable at
// startup and handed to the gmsaas CLI's own credential store.
package config
