package scheduler

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/redundant-peer-sync/internal/model"
	"github.com/goodnatureofminers/redundant-peer-sync/internal/refresh"
)

// Refresher runs sync cycles for one source.
type Refresher interface {
	Source() model.RemoteSource
	Cycle(ctx context.Context, prior *model.ResumeCursor) (refresh.Result, error)
}

// Metrics records scheduler decisions.
type Metrics interface {
	ObserveSkippedTrigger(source string)
}
