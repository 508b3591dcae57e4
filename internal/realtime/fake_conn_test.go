package realtime

import (
	"fmt"
	"sync"
	"sync/atomic"
)

var fakeConnSeq atomic.Int64

type fakeConn struct {
	id string

	mu     sync.Mutex
	open   bool
	full   bool
	frames [][]byte
	closes int
}

func newFakeConn() *fakeConn {
	return &fakeConn{id: fmt.Sprintf("fake-%d", fakeConnSeq.Add(1)), open: true}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *fakeConn) Send(frame []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open || c.full {
		return false
	}
	c.frames = append(c.frames, frame)
	return true
}

func (c *fakeConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
	c.closes++
}

func (c *fakeConn) received() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.frames...)
}
