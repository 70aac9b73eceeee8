// Package domain contains the core business entities of the application:
// users, tasks, and the task priority enumeration. It is independent of
// any specific infrastructure or delivery mechanism.
package domain
