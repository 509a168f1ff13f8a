package refresh

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/redundant-peer-sync/internal/model"
)

// Node is the part of the local node the orchestrator drives.
type Node interface {
	BestBlockHash(ctx context.Context) (model.BlockHash, error)
	SubmitBlock(ctx context.Context, block model.SerializedBlock) error
}

// Source fetches pages from one redundant source.
type Source interface {
	Source() model.RemoteSource
	CursorAt(hash model.BlockHash) (model.ResumeCursor, error)
	Fetch(ctx context.Context, cursor model.ResumeCursor) (model.FetchOutcome, error)
}

// Recoverer finds a common ancestor after a chain mismatch.
type Recoverer interface {
	Resolve(ctx context.Context, candidates []model.BlockHash) (model.ResumeCursor, bool, error)
}

// Metrics records cycle results.
type Metrics interface {
	ObserveCycle(source, status string, imported int, started time.Time)
}
