package transport

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"keyring/internal/domain"
)

// Unimplemented is a Transport with nothing behind it.
type Unimplemented struct{}

// NewUnimplemented returns the placeholder transport.
func NewUnimplemented() *Unimplemented { return &Unimplemented{} }

// Connect reports domain.ErrNotImplemented for every address.
func (Unimplemented) Connect(_ context.Context, host string, port uint16) (domain.ConnHandle, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(int(port)))
	return 0, fmt.Errorf("transport connect %s: %w", addr, domain.ErrNotImplemented)
}

// Send reports domain.ErrNotImplemented.
func (Unimplemented) Send(_ context.Context, conn domain.ConnHandle, _ []byte) error {
	return connError("send", conn)
}

// Recv reports domain.ErrNotImplemented without waiting.
func (Unimplemented) Recv(_ context.Context, conn domain.ConnHandle, _ time.Duration) ([]byte, error) {
	return nil, connError("recv", conn)
}

// Close reports domain.ErrNotImplemented.
func (Unimplemented) Close(conn domain.ConnHandle) error {
	return connError("close", conn)
}

// Listen reports domain.ErrNotImplemented.
func (Unimplemented) Listen(
	_ context.Context,
	port uint16,
	_ domain.ListenOptions,
) (domain.ListenerHandle, error) {
	return 0, fmt.Errorf("transport listen :%d: %w", port, domain.ErrNotImplemented)
}

// Accept reports domain.ErrNotImplemented.
func (Unimplemented) Accept(_ context.Context, listener domain.ListenerHandle) (domain.ConnHandle, error) {
	return 0, fmt.Errorf("transport accept on listener %d: %w", listener, domain.ErrNotImplemented)
}

func connError(op string, conn domain.ConnHandle) error {
	return fmt.Errorf("transport %s on conn %d: %w", op, conn, domain.ErrNotImplemented)
}

// Compile-time assertion that Unimplemented implements domain.Transport.
var _ domain.Transport = (*Unimplemented)(nil)
