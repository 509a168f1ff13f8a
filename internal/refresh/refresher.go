// Package refresh runs one synchronization cycle against a redundant source:
// pick a cursor, fetch a page, recover from a chain mismatch when needed and
// import the fetched blocks into the local node.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/redundant-peer-sync/internal/model"
	"github.com/goodnatureofminers/redundant-peer-sync/pkg/taskqueue"
	"go.uber.org/zap"
)

// Result describes a completed cycle. Next is nil when the cursor must not change.
type Result struct {
	Status   model.CycleStatus
	Next     *model.ResumeCursor
	Imported int
}

// cycle is the value threaded through the steps of one run.
type cycle struct {
	cursor  model.ResumeCursor
	outcome model.FetchOutcome
	blocks  []model.SerializedBlock
	result  Result
}

// Refresher orchestrates cycles for a single source.
type Refresher struct {
	node      Node
	source    Source
	recoverer Recoverer
	metrics   Metrics
	logger    *zap.Logger
}

// NewRefresher wires the collaborators of one source.
func NewRefresher(node Node, source Source, recoverer Recoverer, metrics Metrics, logger *zap.Logger) (*Refresher, error) {
	if metrics == nil {
		return nil, errors.New("refresh metrics is required")
	}
	return &Refresher{
		node:      node,
		source:    source,
		recoverer: recoverer,
		metrics:   metrics,
		logger:    logger.Named("refresh").With(zap.String("source", source.Source().Address)),
	}, nil
}

// Source returns the source this refresher syncs from.
func (r *Refresher) Source() model.RemoteSource {
	return r.source.Source()
}

// Cycle runs one synchronization pass. prior is the cursor produced by the
// previous successful cycle, nil on the first one.
func (r *Refresher) Cycle(ctx context.Context, prior *model.ResumeCursor) (Result, error) {
	started := time.Now()

	var final cycle
	q := taskqueue.New[cycle]()
	steps := []taskqueue.Step[cycle]{
		func(ctx context.Context, c cycle) (cycle, error) { return r.startCursor(ctx, c, prior) },
		r.fetch,
		r.interpret,
		r.importBlocks,
		func(_ context.Context, c cycle) (cycle, error) {
			final = c
			return c, nil
		},
	}
	for _, step := range steps {
		if err := q.Add(step); err != nil {
			return Result{}, err
		}
	}

	err := q.Run(ctx, func() {
		r.logger.Debug("cycle complete",
			zap.String("status", string(final.result.Status)),
			zap.Int("imported", final.result.Imported))
	})
	if err != nil {
		var importErr *ImportError
		imported := 0
		if errors.As(err, &importErr) {
			imported = importErr.Index
		}
		r.metrics.ObserveCycle(r.source.Source().Address, string(model.CycleFailed), imported, started)
		r.logger.Error("cycle failed", zap.Error(err))
		return Result{Status: model.CycleFailed}, err
	}

	r.metrics.ObserveCycle(r.source.Source().Address, string(final.result.Status), final.result.Imported, started)
	return final.result, nil
}

func (r *Refresher) startCursor(ctx context.Context, c cycle, prior *model.ResumeCursor) (cycle, error) {
	if prior != nil && !prior.IsZero() {
		c.cursor = *prior
		return c, nil
	}

	hash, err := r.node.BestBlockHash(ctx)
	if err != nil {
		return c, fmt.Errorf("best block hash: %w", err)
	}
	if hash == "" {
		return c, ErrExpectedBestBlockHash
	}

	c.cursor, err = r.source.CursorAt(hash)
	if err != nil {
		return c, fmt.Errorf("cursor at best block %s: %w", hash, err)
	}
	r.logger.Info("starting from local tip", zap.String("hash", hash.String()))
	return c, nil
}

func (r *Refresher) fetch(ctx context.Context, c cycle) (cycle, error) {
	outcome, err := r.source.Fetch(ctx, c.cursor)
	if err != nil {
		return c, fmt.Errorf("fetch %s: %w", c.cursor, err)
	}
	c.outcome = outcome
	return c, nil
}

func (r *Refresher) interpret(ctx context.Context, c cycle) (cycle, error) {
	switch o := c.outcome.(type) {
	case model.NoNewData:
		next := o.Cursor
		c.result = Result{Status: model.CycleNoNewData, Next: &next}
	case model.Page:
		next := o.Next
		c.blocks = o.Blocks
		c.result = Result{Status: model.CycleAdvanced, Next: &next}
	case model.ChainMismatch:
		r.logger.Warn("source does not recognize cursor, recovering",
			zap.String("cursor", c.cursor.String()),
			zap.Int("candidates", len(o.Candidates)))

		recovered, found, err := r.recoverer.Resolve(ctx, o.Candidates)
		if err != nil {
			return c, fmt.Errorf("recover: %w", err)
		}
		if !found {
			r.logger.Warn("no common ancestor found, keeping cursor")
			c.result = Result{Status: model.CycleStalled}
			return c, nil
		}
		c.result = Result{Status: model.CycleRecovered, Next: &recovered}
	default:
		return c, fmt.Errorf("unexpected fetch outcome %T", c.outcome)
	}
	return c, nil
}

func (r *Refresher) importBlocks(ctx context.Context, c cycle) (cycle, error) {
	if len(c.blocks) == 0 {
		return c, nil
	}

	index := 0
	imports := taskqueue.Each(c.blocks, func(ctx context.Context, block model.SerializedBlock) error {
		if err := r.node.SubmitBlock(ctx, block); err != nil {
			return &ImportError{Index: index, Size: block.Size(), Err: err}
		}
		index++
		return nil
	})
	if err := imports.Run(ctx, nil); err != nil {
		return c, err
	}

	c.result.Imported = index
	r.logger.Info("imported blocks", zap.Int("count", index), zap.String("next", c.result.Next.String()))
	return c, nil
}
