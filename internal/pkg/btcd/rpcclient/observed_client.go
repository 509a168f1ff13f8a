// Package rpcclient instruments the btcd JSON-RPC client with call metrics.
package rpcclient

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient forwards calls to rpcclient.Client and records each one.
type ObservedClient struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
}

func NewObservedClient(client *rpcclient.Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) GetBestBlockHash() (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("getbestblockhash", err, started)
	}()
	return r.client.GetBestBlockHash()
}

func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("getblockhash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

func (r *ObservedClient) GetConnectionCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("getconnectioncount", err, started)
	}()
	return r.client.GetConnectionCount()
}

func (r *ObservedClient) GetPeerInfo() (peers []btcjson.GetPeerInfoResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("getpeerinfo", err, started)
	}()
	return r.client.GetPeerInfo()
}

func (r *ObservedClient) GetBlockChainInfo() (res *btcjson.GetBlockChainInfoResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("getblockchaininfo", err, started)
	}()
	return r.client.GetBlockChainInfo()
}

// RawRequest sends a call the typed client does not cover, such as
// getblock with verbosity 0, submitblock with a hex payload or setban.
func (r *ObservedClient) RawRequest(method string, params []json.RawMessage) (res json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe(method, err, started)
	}()
	return r.client.RawRequest(method, params)
}
