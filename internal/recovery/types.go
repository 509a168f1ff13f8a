package recovery

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/redundant-peer-sync/internal/model"
)

// BlockLookup asks the local node whether it has a block.
type BlockLookup interface {
	HexSerializedBlock(ctx context.Context, hash model.BlockHash) (model.SerializedBlock, bool, error)
}

// CursorBuilder turns a known hash into a resume cursor for the source.
type CursorBuilder interface {
	CursorAt(hash model.BlockHash) (model.ResumeCursor, error)
}
