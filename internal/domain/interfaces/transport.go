package interfaces

import (
	"context"
	"time"

	domaintypes "keyring/internal/domain/types"
)

// Transport carries byte payloads between nodes. Connections and listeners
// are referred to by handles issued by the transport itself; operations on
// a handle the transport did not issue must fail.
type Transport interface {
	Connect(ctx context.Context, host string, port uint16) (domaintypes.ConnHandle, error)
	Send(ctx context.Context, conn domaintypes.ConnHandle, data []byte) error
	// Recv waits at most timeout for the next payload on conn.
	Recv(ctx context.Context, conn domaintypes.ConnHandle, timeout time.Duration) ([]byte, error)
	Close(conn domaintypes.ConnHandle) error

	Listen(
		ctx context.Context,
		port uint16,
		opts domaintypes.ListenOptions,
	) (domaintypes.ListenerHandle, error)
	Accept(ctx context.Context, listener domaintypes.ListenerHandle) (domaintypes.ConnHandle, error)
}
