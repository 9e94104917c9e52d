// Package utils exposes reusable helpers consumed by the CLI commands.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper, environment variables, and zap logging.
package utils
