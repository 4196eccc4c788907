// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Store ports are implemented by the persistence drivers and called by the application layer.
package ports
