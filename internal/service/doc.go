// Package service implements the transport-agnostic application
// operations: account lifecycle, task CRUD with ownership enforcement,
// and the task query engine (filtering, pagination, statistics).
package service
