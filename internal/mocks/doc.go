// Package mocks provides hand-written test doubles for service
// interfaces.
package mocks
