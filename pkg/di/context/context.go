package shortcontext

import (
	"context"
	"os/signal"
	"syscall"
)

// New returns a context cancelled on SIGINT/SIGTERM, so every provider
// hanging cleanup off ctx.Done shuts down with the process.
func New() (context.Context, func()) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
