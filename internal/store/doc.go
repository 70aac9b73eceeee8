// Package store defines the interfaces and error types for entity
// persistence. Implementations live under internal/platform.
package store
