package model

import (
	"strings"
	"time"
)

// BlockchainInfo is the subset of getblockchaininfo used by the sync service.
type BlockchainInfo struct {
	Height      uint64
	BestHash    BlockHash
	PruneHeight *uint64
}

// PeerService classifies the software behind a connected peer.
type PeerService string

var (
	PeerServiceBitcoinCore  PeerService = "bitcoin-core"
	PeerServiceBitcoinKnots PeerService = "bitcoin-knots"
	PeerServiceRedundant    PeerService = "redundant-peer"
	PeerServiceUnidentified PeerService = "unidentified"
)

// ServiceFromUserAgent classifies a BIP14 user agent such as "/Satoshi:0.13.0/".
func ServiceFromUserAgent(agent string) PeerService {
	switch {
	case strings.Contains(agent, "Knots:"):
		return PeerServiceBitcoinKnots
	case strings.HasPrefix(agent, "/Satoshi:"):
		return PeerServiceBitcoinCore
	default:
		return PeerServiceUnidentified
	}
}

// IsFromBitcoinNetwork reports whether the service is a P2P network peer.
func (s PeerService) IsFromBitcoinNetwork() bool {
	return s != PeerServiceRedundant
}

// Peer is a connected node peer as reported by getpeerinfo.
type Peer struct {
	Address        string
	UserAgent      string
	ConnectedSince time.Time
	Service        PeerService
}

// BanDuration controls how long setban excludes an address.
// A zero Duration uses the node default.
type BanDuration struct {
	Duration  time.Duration
	Permanent bool
}
