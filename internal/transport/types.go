package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/redundant-peer-sync/internal/scheduler"
)

// Scheduler is what the HTTP handlers read from and act on.
type Scheduler interface {
	Snapshot() []scheduler.SourceStatus
	Trigger(ctx context.Context, address string) (bool, error)
}
