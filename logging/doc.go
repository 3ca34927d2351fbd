// Package logging builds the structured slog loggers used while loading configuration
// trees. Output is JSON by default, with an optional text format for terminals.
package logging
