// Package logging provides the structured logger used by the file factory
// packages, built on Go's standard library log/slog with a JSON handler.
package logging
