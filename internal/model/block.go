package model

import "encoding/hex"

// SerializedBlock is a hex encoded block as accepted by submitblock.
type SerializedBlock string

// NewSerializedBlock validates s as a non-empty hex payload.
func NewSerializedBlock(s string) (SerializedBlock, error) {
	if s == "" || len(s)%2 != 0 {
		return "", ErrInvalidSerializedBlock
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", ErrInvalidSerializedBlock
	}
	return SerializedBlock(s), nil
}

// String returns the hex payload.
func (b SerializedBlock) String() string {
	return string(b)
}

// Size returns the decoded payload size in bytes.
func (b SerializedBlock) Size() int {
	return len(b) / 2
}
