package refresh

import (
	"errors"
	"fmt"
)

// ErrExpectedBestBlockHash is returned when the node reports an empty best block hash.
var ErrExpectedBestBlockHash = errors.New("expected best block hash")

// ImportError reports the block the node refused, its position in the page
// and its decoded size in bytes.
type ImportError struct {
	Index int
	Size  int
	Err   error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import block %d (%d bytes): %v", e.Index, e.Size, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
