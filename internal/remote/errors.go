package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrExpectedLinkHeader is returned when a page response lacks a current or next link.
	ErrExpectedLinkHeader = errors.New("expected link header")
	// ErrExpectedRecoveryData is returned when a not-found response carries no candidate hashes.
	ErrExpectedRecoveryData = errors.New("expected recovery data")
	// ErrExpectedSerializedBlocks is returned when a page body is not a list of valid hex blocks.
	ErrExpectedSerializedBlocks = errors.New("expected serialized blocks")
	// ErrUnexpectedStatusCode matches any UnexpectedStatusError.
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)

// UnexpectedStatusError reports an HTTP status the sync protocol does not define.
type UnexpectedStatusError struct {
	Code int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnexpectedStatusCode, e.Code)
}

// Is lets errors.Is match ErrUnexpectedStatusCode.
func (e *UnexpectedStatusError) Is(target error) bool {
	return target == ErrUnexpectedStatusCode
}
