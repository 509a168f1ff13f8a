// Package node is the client of the local full node the sync service feeds.
package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/netip"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/redundant-peer-sync/internal/model"
	"github.com/goodnatureofminers/redundant-peer-sync/pkg/safe"
	"go.uber.org/zap"
)

// permanentBanUntil is the absolute setban time used for permanent bans (9999-12-31).
const permanentBanUntil int64 = 253402300799

// submitblock result meaning the node already has the block.
const duplicateBlock = "duplicate"

var (
	// ErrExpectedBlockHash is returned when the node answers with an empty hash.
	ErrExpectedBlockHash = errors.New("expected block hash from node")
	// ErrMalformedResponse is returned when a node result cannot be decoded.
	ErrMalformedResponse = errors.New("malformed node response")
	// ErrInvalidBanAddress is returned when setban gets something other than an IP address.
	ErrInvalidBanAddress = errors.New("ban address is not an ip address")
	// ErrFeeUnavailable is returned when the node has no fee estimate yet.
	ErrFeeUnavailable = errors.New("fee estimate unavailable")
)

// RejectedBlockError reports a submitblock call the node answered with a rejection reason.
type RejectedBlockError struct {
	Reason string
}

func (e *RejectedBlockError) Error() string {
	return fmt.Sprintf("node rejected block: %s", e.Reason)
}

// Client issues RPC calls against the local node.
type Client struct {
	rpc    RPCClient
	logger *zap.Logger
}

// NewClient wraps an RPC transport.
func NewClient(rpc RPCClient, logger *zap.Logger) *Client {
	return &Client{
		rpc:    rpc,
		logger: logger,
	}
}

// BestBlockHash returns the hash of the node's chain tip.
func (c *Client) BestBlockHash(ctx context.Context) (model.BlockHash, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	hash, err := c.rpc.GetBestBlockHash()
	if err != nil {
		return "", fmt.Errorf("get best block hash: %w", err)
	}
	if hash == nil {
		return "", ErrExpectedBlockHash
	}
	return model.NewBlockHash(hash.String())
}

// BlockHash returns the hash of the main chain block at height.
func (c *Client) BlockHash(ctx context.Context, height uint64) (model.BlockHash, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	h, err := safe.Int64(height)
	if err != nil {
		return "", fmt.Errorf("block height %d exceeds rpc limit: %w", height, err)
	}
	hash, err := c.rpc.GetBlockHash(h)
	if err != nil {
		return "", fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	if hash == nil {
		return "", ErrExpectedBlockHash
	}
	return model.NewBlockHash(hash.String())
}

// HexSerializedBlock fetches the raw block for hash. The boolean is false when
// the node does not know the block.
func (c *Client) HexSerializedBlock(ctx context.Context, hash model.BlockHash) (model.SerializedBlock, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	res, err := c.rpc.RawRequest("getblock", params(hash.String(), false))
	if err != nil {
		var rpcErr *btcjson.RPCError
		if errors.As(err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCBlockNotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get block %s: %w", hash, err)
	}

	raw, err := optionalString(res)
	if err != nil {
		return "", false, fmt.Errorf("%w: getblock: %v", ErrMalformedResponse, err)
	}
	if raw == nil || *raw == "" {
		return "", false, nil
	}
	block, err := model.NewSerializedBlock(*raw)
	if err != nil {
		return "", false, fmt.Errorf("%w: getblock %s: %v", ErrMalformedResponse, hash, err)
	}
	return block, true, nil
}

// SubmitBlock pushes a block into the node. Blocks the node already has are
// accepted so that resubmitting a page is harmless.
func (c *Client) SubmitBlock(ctx context.Context, block model.SerializedBlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := c.rpc.RawRequest("submitblock", params(block.String()))
	if err != nil {
		return fmt.Errorf("submit block: %w", err)
	}

	reason, err := optionalString(res)
	if err != nil {
		return fmt.Errorf("%w: submitblock: %v", ErrMalformedResponse, err)
	}
	if reason == nil {
		return nil
	}
	if *reason == duplicateBlock {
		c.logger.Debug("node already has submitted block", zap.Int("size", block.Size()))
		return nil
	}
	return &RejectedBlockError{Reason: *reason}
}

// ConnectionCount returns the number of peers connected to the node.
func (c *Client) ConnectionCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := c.rpc.GetConnectionCount()
	if err != nil {
		return 0, fmt.Errorf("get connection count: %w", err)
	}
	return int(count), nil
}

// PeerInfo lists the node's connected P2P peers.
func (c *Client) PeerInfo(ctx context.Context) ([]model.Peer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := c.rpc.GetPeerInfo()
	if err != nil {
		return nil, fmt.Errorf("get peer info: %w", err)
	}

	peers := make([]model.Peer, 0, len(infos))
	for _, info := range infos {
		addr := info.Addr
		if addr == "" {
			addr = "unknown"
		}
		peer := model.Peer{
			Address:   "bitcoin://" + addr,
			UserAgent: info.SubVer,
			Service:   model.ServiceFromUserAgent(info.SubVer),
		}
		if info.ConnTime > 0 {
			peer.ConnectedSince = time.Unix(info.ConnTime, 0).UTC()
		}
		peers = append(peers, peer)
	}
	return peers, nil
}

// SetBan bans an IP address on the node for the given duration.
func (c *Client) SetBan(ctx context.Context, address string, d model.BanDuration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ip, err := netip.ParseAddr(address)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidBanAddress, address)
	}

	banTime, absolute := int64(d.Duration/time.Second), false
	if d.Permanent {
		banTime, absolute = permanentBanUntil, true
	}
	if _, err := c.rpc.RawRequest("setban", params(ip.String(), "add", banTime, absolute)); err != nil {
		return fmt.Errorf("set ban %s: %w", ip, err)
	}
	return nil
}

// EstimateFee returns the fee rate per kB for confirmation within maxBlocks.
// The node answers -1 while it lacks data, reported as ErrFeeUnavailable.
func (c *Client) EstimateFee(ctx context.Context, maxBlocks int) (btcutil.Amount, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := c.rpc.RawRequest("estimatefee", params(maxBlocks))
	if err != nil {
		return 0, fmt.Errorf("estimate fee: %w", err)
	}
	var fee float64
	if err := json.Unmarshal(res, &fee); err != nil {
		return 0, fmt.Errorf("%w: estimatefee: %v", ErrMalformedResponse, err)
	}
	if fee < 0 {
		return 0, ErrFeeUnavailable
	}
	amount, err := btcutil.NewAmount(fee)
	if err != nil {
		return 0, fmt.Errorf("%w: estimatefee: %v", ErrMalformedResponse, err)
	}
	return amount, nil
}

// BlockchainInfo returns the node's height, tip and prune height.
func (c *Client) BlockchainInfo(ctx context.Context) (model.BlockchainInfo, error) {
	if err := ctx.Err(); err != nil {
		return model.BlockchainInfo{}, err
	}
	res, err := c.rpc.GetBlockChainInfo()
	if err != nil {
		return model.BlockchainInfo{}, fmt.Errorf("get blockchain info: %w", err)
	}
	if res == nil {
		return model.BlockchainInfo{}, fmt.Errorf("%w: empty blockchain info", ErrMalformedResponse)
	}

	height, err := safe.Uint64(res.Blocks)
	if err != nil {
		return model.BlockchainInfo{}, fmt.Errorf("%w: block count: %v", ErrMalformedResponse, err)
	}
	best, err := model.NewBlockHash(res.BestBlockHash)
	if err != nil {
		return model.BlockchainInfo{}, fmt.Errorf("%w: best block hash: %v", ErrMalformedResponse, err)
	}

	info := model.BlockchainInfo{Height: height, BestHash: best}
	if res.Pruned {
		prune, err := safe.Uint64(res.PruneHeight)
		if err != nil {
			return model.BlockchainInfo{}, fmt.Errorf("%w: prune height: %v", ErrMalformedResponse, err)
		}
		info.PruneHeight = &prune
	}
	return info, nil
}

func params(values ...any) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		// strings, numbers and booleans always marshal
		raw, _ := json.Marshal(v)
		out = append(out, raw)
	}
	return out
}

func optionalString(res json.RawMessage) (*string, error) {
	if len(res) == 0 {
		return nil, nil
	}
	var s *string
	if err := json.Unmarshal(res, &s); err != nil {
		return nil, err
	}
	return s, nil
}
