//go:build !zmq

package main

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

func startBlockSignal(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}
	logger.Warn("zmq support not compiled in, rebuild with -tags zmq", zap.String("addr", addr))
	return nil, errors.New("zmq-addr requires the zmq build tag")
}
