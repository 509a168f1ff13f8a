// Package recovery finds the most recent common ancestor between the local
// node and a redundant source after the source rejected a cursor.
package recovery

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/redundant-peer-sync/internal/model"
	"github.com/goodnatureofminers/redundant-peer-sync/pkg/taskqueue"
	"go.uber.org/zap"
)

// Resolver probes candidate hashes against the local node.
type Resolver struct {
	lookup  BlockLookup
	cursors CursorBuilder
	logger  *zap.Logger
}

// NewResolver builds a Resolver.
func NewResolver(lookup BlockLookup, cursors CursorBuilder, logger *zap.Logger) *Resolver {
	return &Resolver{
		lookup:  lookup,
		cursors: cursors,
		logger:  logger.Named("recovery"),
	}
}

// Resolve walks candidates from the end of the list to the start, one probe
// at a time, and stops at the first hash the local node knows. found is false
// when none of them is known.
func (r *Resolver) Resolve(ctx context.Context, candidates []model.BlockHash) (cursor model.ResumeCursor, found bool, err error) {
	if len(candidates) == 0 {
		return model.ResumeCursor{}, false, nil
	}

	probes := make([]model.BlockHash, 0, len(candidates))
	for i := len(candidates) - 1; i >= 0; i-- {
		probes = append(probes, candidates[i])
	}

	var q *taskqueue.Queue[struct{}]
	q = taskqueue.Each(probes, func(ctx context.Context, hash model.BlockHash) error {
		_, known, err := r.lookup.HexSerializedBlock(ctx, hash)
		if err != nil {
			return fmt.Errorf("probe %s: %w", hash, err)
		}
		if !known {
			r.logger.Debug("candidate unknown locally", zap.String("hash", hash.String()))
			return nil
		}

		c, err := r.cursors.CursorAt(hash)
		if err != nil {
			return fmt.Errorf("cursor at %s: %w", hash, err)
		}
		r.logger.Info("common ancestor found", zap.String("hash", hash.String()))
		cursor, found = c, true
		q.Cancel()
		return nil
	})

	err = q.Run(ctx, nil)
	switch {
	case found:
		return cursor, true, nil
	case err == nil:
		r.logger.Warn("no candidate known locally", zap.Int("candidates", len(candidates)))
		return model.ResumeCursor{}, false, nil
	default:
		return model.ResumeCursor{}, false, err
	}
}
