package model

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrInvalidSourceAddress is returned for source addresses that are not absolute http(s) URLs.
var ErrInvalidSourceAddress = errors.New("invalid redundant source address")

// RemoteSource is a redundant blockchain data service identified by its base URL.
type RemoteSource struct {
	Address string
	URL     *url.URL
}

// NewRemoteSource parses addr into a RemoteSource.
func NewRemoteSource(addr string) (RemoteSource, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return RemoteSource{}, fmt.Errorf("%w: %v", ErrInvalidSourceAddress, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return RemoteSource{}, fmt.Errorf("%w: scheme %q", ErrInvalidSourceAddress, u.Scheme)
	}
	if u.Host == "" {
		return RemoteSource{}, fmt.Errorf("%w: missing host", ErrInvalidSourceAddress)
	}
	return RemoteSource{Address: addr, URL: u}, nil
}

// String returns the configured address.
func (s RemoteSource) String() string {
	return s.Address
}

// Peer presents the source alongside the node's network peers.
func (s RemoteSource) Peer() Peer {
	return Peer{Address: s.Address, Service: PeerServiceRedundant}
}
