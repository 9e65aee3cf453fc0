// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Store ports are implemented by outbound store adapters and called by the
// application layer and the HTTP guard middleware.
package ports
