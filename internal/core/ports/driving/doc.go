// Package driving defines the interfaces through which external actors call
// INTO the core: the CLI, the MCP server, and the directory watcher.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; driving adapters consume them.
package driving
