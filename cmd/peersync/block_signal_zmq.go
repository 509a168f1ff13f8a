//go:build zmq

package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"syscall"
	"time"

	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

const (
	hashBlockTopic = "hashblock"
	// recvTimeout bounds how long a receive blocks before ctx is checked again.
	recvTimeout = time.Second
	retryDelay  = time.Second
)

// startBlockSignal subscribes to the node's hashblock notifications. Every
// new tip wakes the scheduler before the poll interval elapses. The socket
// is closed once ctx is canceled.
func startBlockSignal(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}

	sub, err := dialHashBlock(addr)
	if err != nil {
		return nil, fmt.Errorf("connect zmq %s: %w", addr, err)
	}
	logger.Info("subscribed to block notifications", zap.String("addr", addr))

	notifier := newBlockNotifier()
	go func() {
		defer func() {
			if err := sub.Close(); err != nil {
				logger.Warn("close zmq socket", zap.Error(err))
			}
		}()
		for ctx.Err() == nil {
			hash, err := receiveHashBlock(sub)
			switch {
			case err == nil:
				logger.Debug("new block announced", zap.String("hash", hash))
				notifier.announce()
			case zmq4.AsErrno(err) == zmq4.Errno(syscall.EAGAIN):
				// receive timeout, loop to observe ctx
			default:
				logger.Warn("zmq receive failed", zap.Error(err))
				select {
				case <-ctx.Done():
				case <-time.After(retryDelay):
				}
			}
		}
		logger.Info("block notifications stopped")
	}()

	return notifier.C(), nil
}

// receiveHashBlock waits for one hashblock message and returns the hash it
// announces. Bitcoin Core sends topic, 32 byte hash and a sequence number.
func receiveHashBlock(sub *zmq4.Socket) (string, error) {
	parts, err := sub.RecvMessageBytes(0)
	if err != nil {
		return "", err
	}
	if len(parts) < 2 || string(parts[0]) != hashBlockTopic {
		return "", fmt.Errorf("unexpected zmq message with %d parts", len(parts))
	}
	return hex.EncodeToString(parts[1]), nil
}

func dialHashBlock(addr string) (*zmq4.Socket, error) {
	sub, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, err
	}
	setup := []func() error{
		func() error { return sub.SetRcvtimeo(recvTimeout) },
		func() error { return sub.SetSubscribe(hashBlockTopic) },
		func() error { return sub.Connect(addr) },
	}
	for _, step := range setup {
		if err := step(); err != nil {
			_ = sub.Close()
			return nil, err
		}
	}
	return sub, nil
}
