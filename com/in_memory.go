package com

import (
	"io"
	"sync"
	"time"
)

// NewInMemory creates an in-memory replacement for the receiver's serial
// device, for testing. An MT-RX is a pure output device, so only the read
// side exists.
func NewInMemory() *InMemory {
	return &InMemory{
		readBuffer: []byte{},
		readLock:   new(sync.RWMutex),
		closed:     make(chan struct{}),
	}
}

// InMemory simulates the read side of an MT-RX serial device.
type InMemory struct {
	readBuffer     []byte
	readLock       *sync.RWMutex
	closed         chan struct{}
	closeWhenEmpty bool
}

func (rw *InMemory) Close() error {
	select {
	case <-rw.closed:
	default:
		close(rw.closed)
	}
	return nil
}

func (rw *InMemory) WaitUntilClosed() {
	<-rw.closed
}

func (rw *InMemory) Read(p []byte) (int, error) {
	for {
		rw.readLock.RLock()
		if len(rw.readBuffer) > 0 {
			rw.readLock.RUnlock()
			break
		}
		rw.readLock.RUnlock()
		select {
		case <-rw.closed:
			return 0, io.EOF
		case <-time.After(10 * time.Millisecond):
			continue
		}
	}

	select {
	case <-rw.closed:
		return 0, io.EOF
	default:
	}

	rw.readLock.Lock()
	defer rw.readLock.Unlock()
	n := len(p)
	if n > len(rw.readBuffer) {
		n = len(rw.readBuffer)
	}
	copy(p, rw.readBuffer[0:n])
	if n < len(rw.readBuffer) {
		rw.readBuffer = rw.readBuffer[n:]
	} else {
		rw.readBuffer = []byte{}
	}
	if rw.closeWhenEmpty && len(rw.readBuffer) == 0 {
		close(rw.closed)
	}
	return n, nil
}

// PrepareRead appends the given bytes to the stream the device will emit.
func (rw *InMemory) PrepareRead(p []byte) {
	rw.readLock.Lock()
	defer rw.readLock.Unlock()

	rw.readBuffer = append(rw.readBuffer, p...)
}

func (rw *InMemory) ClearRead() {
	rw.readLock.Lock()
	defer rw.readLock.Unlock()

	rw.readBuffer = []byte{}

	if rw.closeWhenEmpty && len(rw.readBuffer) == 0 {
		close(rw.closed)
	}
}

func (rw *InMemory) IsReadEmpty() bool {
	rw.readLock.RLock()
	defer rw.readLock.RUnlock()

	return len(rw.readBuffer) == 0
}

// CloseWhenEmpty lets the device close itself as soon as all prepared bytes
// were read. This keeps session tests free of sleeps.
func (rw *InMemory) CloseWhenEmpty(value bool) {
	rw.readLock.Lock()
	defer rw.readLock.Unlock()

	rw.closeWhenEmpty = value
}
