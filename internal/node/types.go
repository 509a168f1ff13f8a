package node

import (
	"encoding/json"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient is the subset of the btcd JSON-RPC client used to talk to the node.
	RPCClient interface {
		GetBestBlockHash() (*chainhash.Hash, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetConnectionCount() (int64, error)
		GetPeerInfo() ([]btcjson.GetPeerInfoResult, error)
		GetBlockChainInfo() (*btcjson.GetBlockChainInfoResult, error)
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
)
