// Package memstore provides in-memory implementations of the store
// interfaces. State lives for the lifetime of the process and is lost on
// restart; every mutation is a single atomic step under the store mutex.
package memstore
