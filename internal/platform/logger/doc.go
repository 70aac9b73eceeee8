// Package logger provides structured logging setup and context helpers
// for the application.
package logger
