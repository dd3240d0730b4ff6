package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records long-running operations (installs, upgrades, tool
// executions) as vertexes for progress reporting.
type Telemetry interface {
	// Record starts a new vertex with the given name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work. Writes become vertex output.
type Vertex interface {
	io.Writer
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}
