// Package remote fetches pages of blocks from redundant HTTP block sources.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/redundant-peer-sync/internal/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultAPIVersion        = "v0"
	defaultTimeout           = 30 * time.Second
	defaultRequestsPerSecond = 2
)

// Config tunes requests against a single source.
type Config struct {
	// APIVersion is the first path segment, "v0" by default.
	APIVersion string
	// PageLimit adds ?limit=N to cursors built from a hash when positive.
	PageLimit         int
	Timeout           time.Duration
	RequestsPerSecond int
}

func (c Config) withDefaults() Config {
	if c.APIVersion == "" {
		c.APIVersion = defaultAPIVersion
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = defaultRequestsPerSecond
	}
	return c
}

type recoveryPayload struct {
	Error *struct {
		Hashes []string `json:"hashes"`
	} `json:"error"`
}

// Client talks to one redundant source.
type Client struct {
	source  model.RemoteSource
	cfg     Config
	http    *resty.Client
	limiter ratelimit.Limiter
	metrics Metrics
	logger  *zap.Logger
}

// NewClient builds a Client for source.
func NewClient(source model.RemoteSource, cfg Config, metrics Metrics, logger *zap.Logger) *Client {
	cfg = cfg.withDefaults()
	logger = logger.With(zap.String("source", source.Address))

	return &Client{
		source:  source,
		cfg:     cfg,
		limiter: ratelimit.New(cfg.RequestsPerSecond),
		metrics: metrics,
		logger:  logger,
		http: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json").
			SetLogger(logger.Named("http").Sugar()),
	}
}

// Source returns the source this client fetches from.
func (c *Client) Source() model.RemoteSource {
	return c.source
}

// CursorAt builds the cursor requesting the blocks after hash.
func (c *Client) CursorAt(hash model.BlockHash) (model.ResumeCursor, error) {
	path := "/" + c.cfg.APIVersion + "/blocks/after/" + url.PathEscape(hash.String()) + "/"
	ref := &url.URL{Path: path}
	if c.cfg.PageLimit > 0 {
		ref.RawQuery = "limit=" + strconv.Itoa(c.cfg.PageLimit)
	}
	u := c.source.URL.ResolveReference(ref)
	if !u.IsAbs() {
		return model.ResumeCursor{}, fmt.Errorf("cursor for %s is not absolute: %s", hash, u)
	}
	return model.NewResumeCursor(u), nil
}

// Fetch requests the page at cursor and interprets the response.
func (c *Client) Fetch(ctx context.Context, cursor model.ResumeCursor) (outcome model.FetchOutcome, err error) {
	started := time.Now()
	defer func() {
		blocks := 0
		if page, ok := outcome.(model.Page); ok {
			blocks = len(page.Blocks)
		}
		name := ""
		if outcome != nil {
			name = model.OutcomeName(outcome)
		}
		c.metrics.ObserveFetch(c.source.Address, name, blocks, err, started)
	}()

	if cursor.IsZero() {
		return nil, fmt.Errorf("fetch from %s: empty cursor", c.source)
	}

	c.limiter.Take()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get %s: %w", cursor, err)
	}
	resp, err := c.http.R().
		SetContext(ctx).
		Get(cursor.String())
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", cursor, err)
	}

	c.logger.Debug("fetched page", zap.String("cursor", cursor.String()), zap.Int("status", resp.StatusCode()))

	switch resp.StatusCode() {
	case http.StatusNoContent:
		return model.NoNewData{Cursor: cursor}, nil
	case http.StatusNotFound:
		return c.chainMismatch(resp.Body())
	case http.StatusOK:
		return c.page(cursor, resp.Header().Get("Link"), resp.Body())
	default:
		return nil, &UnexpectedStatusError{Code: resp.StatusCode()}
	}
}

func (c *Client) chainMismatch(body []byte) (model.FetchOutcome, error) {
	var payload recoveryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExpectedRecoveryData, err)
	}
	if payload.Error == nil {
		return nil, ErrExpectedRecoveryData
	}
	candidates := model.BlockHashes(payload.Error.Hashes)
	if len(candidates) == 0 {
		return nil, ErrExpectedRecoveryData
	}
	return model.ChainMismatch{Candidates: candidates}, nil
}

func (c *Client) page(cursor model.ResumeCursor, linkHeader string, body []byte) (model.FetchOutcome, error) {
	links, ok := ParseLinks(linkHeader)
	if !ok || links.Continuation() == "" {
		return nil, ErrExpectedLinkHeader
	}
	next, err := cursor.URL().Parse(links.Continuation())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExpectedLinkHeader, err)
	}

	var raw []string
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExpectedSerializedBlocks, err)
	}
	if len(raw) == 0 {
		return nil, ErrExpectedSerializedBlocks
	}

	blocks := make([]model.SerializedBlock, 0, len(raw))
	for _, s := range raw {
		block, err := model.NewSerializedBlock(s)
		if err != nil {
			continue
		}
		blocks = append(blocks, block)
	}
	if len(blocks) != len(raw) {
		return nil, fmt.Errorf("%w: %d of %d entries malformed", ErrExpectedSerializedBlocks, len(raw)-len(blocks), len(raw))
	}

	return model.Page{Blocks: blocks, Next: model.NewResumeCursor(next)}, nil
}
