package node

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/rpcclient"
)

// ConnConfig describes how to reach the local node's JSON-RPC server.
type ConnConfig struct {
	URL      string
	User     string
	Password string
	// CookiePath overrides the cookie file discovered from the node data dir.
	CookiePath string
	Network    string
}

// DefaultCookiePath returns where the node writes its RPC cookie for network.
func DefaultCookiePath(network string) string {
	dir := btcutil.AppDataDir("bitcoin", false)
	switch network {
	case "testnet", "testnet3":
		dir = filepath.Join(dir, "testnet3")
	case "testnet4":
		dir = filepath.Join(dir, "testnet4")
	case "signet":
		dir = filepath.Join(dir, "signet")
	case "regtest":
		dir = filepath.Join(dir, "regtest")
	}
	return filepath.Join(dir, ".cookie")
}

// NewRPCConfig validates cfg and translates it into an rpcclient configuration.
// Without explicit credentials the cookie file is used for basic auth.
func NewRPCConfig(cfg ConnConfig) (*rpcclient.ConnConfig, error) {
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	conn := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	if cfg.User != "" || cfg.Password != "" {
		conn.User = cfg.User
		conn.Pass = cfg.Password
		return conn, nil
	}

	conn.CookiePath = cfg.CookiePath
	if conn.CookiePath == "" {
		conn.CookiePath = DefaultCookiePath(cfg.Network)
	}
	return conn, nil
}

// Dial creates the btcd RPC client for cfg.
func Dial(cfg ConnConfig) (*rpcclient.Client, error) {
	conn, err := NewRPCConfig(cfg)
	if err != nil {
		return nil, err
	}
	return rpcclient.New(conn, nil)
}
