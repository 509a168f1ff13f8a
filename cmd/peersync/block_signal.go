package main

// blockNotifier coalesces block announcements into at most one pending wakeup.
type blockNotifier struct {
	ch chan struct{}
}

func newBlockNotifier() *blockNotifier {
	return &blockNotifier{ch: make(chan struct{}, 1)}
}

// announce records a new block without blocking. A wakeup that is already
// pending absorbs it.
func (n *blockNotifier) announce() bool {
	select {
	case n.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// C is the channel handed to the scheduler.
func (n *blockNotifier) C() <-chan struct{} {
	return n.ch
}
