// Package model defines the domain types shared by the redundant peer sync pipeline.
package model

import "errors"

var (
	// ErrEmptyBlockHash is returned when a block hash string is empty.
	ErrEmptyBlockHash = errors.New("empty block hash")
	// ErrInvalidSerializedBlock is returned when a serialized block is empty or not hex.
	ErrInvalidSerializedBlock = errors.New("invalid hex serialized block")
)

// BlockHash identifies a block. It is opaque to the sync pipeline.
type BlockHash string

// NewBlockHash validates s as a block hash.
func NewBlockHash(s string) (BlockHash, error) {
	if s == "" {
		return "", ErrEmptyBlockHash
	}
	return BlockHash(s), nil
}

// String returns the hash as sent on the wire.
func (h BlockHash) String() string {
	return string(h)
}

// BlockHashes converts raw strings into hashes, dropping empty entries.
func BlockHashes(raw []string) []BlockHash {
	hashes := make([]BlockHash, 0, len(raw))
	for _, s := range raw {
		h, err := NewBlockHash(s)
		if err != nil {
			continue
		}
		hashes = append(hashes, h)
	}
	return hashes
}
