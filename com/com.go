package com

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/text/encoding/charmap"

	"github.com/roby2014/wte-mt-rx-parser/telegram"
)

const readBufferSize = 1024

// NewWithTrace creates a new Receiver that traces all received lines to a second writer.
func NewWithTrace(device io.Reader, tracer io.Writer) *Receiver {
	return newReceiver(device, tracer)
}

// New creates a new Receiver reading the MT-RX telegram stream from the given
// io.Reader. Every complete line is decoded and dispatched to the registered
// handlers. The session ends when the device is closed or fails to read.
func New(device io.Reader) *Receiver {
	return newReceiver(device, nil)
}

func newReceiver(device io.Reader, tracer io.Writer) *Receiver {
	result := &Receiver{
		closed: make(chan struct{}),
		tracer: tracer,
	}

	lines := readLoop(device)
	go result.run(lines)

	return result
}

// Receiver dispatches the decoded telegrams of one MT-RX serial session.
type Receiver struct {
	closed chan struct{}
	tracer io.Writer

	handlersLock           sync.RWMutex
	structuredAlertHandler func(telegram.StructuredAlert)
	rawHandler             func(telegram.Raw)
	receiverStatusHandler  func(telegram.ReceiverStatus)
	decodeErrorHandler     func(line string, err error)
}

func readLoop(r io.Reader) <-chan string {
	lines := make(chan string, 1)
	go func() {
		defer close(lines)
		buf := make([]byte, readBufferSize)
		currentLine := make([]byte, 0, readBufferSize)
		for {
			n, err := r.Read(buf)
			if err != nil {
				if len(currentLine) > 0 {
					lines <- string(currentLine)
				}
				return
			}

			for _, b := range buf[0:n] {
				switch {
				// RSS telegrams are terminated with a bare <CR>, the MT
				// telegrams with <CR><LF>, so both end a line here.
				case b == '\n' || b == '\r':
					if len(currentLine) == 0 {
						continue
					}
					lines <- string(currentLine)
					currentLine = currentLine[:0]
				case b < ' ':
					continue
				default:
					currentLine = append(currentLine, b)
				}
			}
		}
	}()
	return lines
}

func (r *Receiver) run(lines <-chan string) {
	r.trace("****\n* SESSION START\n****\n")
	defer r.trace("****\n* SESSION END\n****\n")
	defer close(r.closed)

	decoder := charmap.ISO8859_1.NewDecoder()
	for line := range lines {
		r.tracef("rx:  %s\nhex: %X\n--\n", line, line)

		utf8Line, err := decoder.String(line)
		if err != nil { // be lenient and keep the raw line
			utf8Line = line
		}

		message, err := telegram.Decode(utf8Line)
		if err != nil {
			r.handleDecodeError(utf8Line, err)
			continue
		}

		switch m := message.(type) {
		case telegram.StructuredAlert:
			r.handleStructuredAlert(m)
		case telegram.Raw:
			r.handleRaw(m)
		case telegram.ReceiverStatus:
			r.handleReceiverStatus(m)
		}
	}
}

// Closed indicates if this session has ended.
func (r *Receiver) Closed() bool {
	select {
	case <-r.closed:
		return true
	default:
		return false
	}
}

// WaitUntilClosed blocks until this session has ended.
func (r *Receiver) WaitUntilClosed() {
	<-r.closed
}

// OnStructuredAlert registers the handler for decoded MT1 telegrams.
// The handler runs on the session's goroutine.
func (r *Receiver) OnStructuredAlert(handler func(telegram.StructuredAlert)) {
	r.handlersLock.Lock()
	defer r.handlersLock.Unlock()
	r.structuredAlertHandler = handler
}

// OnRaw registers the handler for decoded MT6 telegrams.
// The handler runs on the session's goroutine.
func (r *Receiver) OnRaw(handler func(telegram.Raw)) {
	r.handlersLock.Lock()
	defer r.handlersLock.Unlock()
	r.rawHandler = handler
}

// OnReceiverStatus registers the handler for decoded RSS telegrams.
// The handler runs on the session's goroutine.
func (r *Receiver) OnReceiverStatus(handler func(telegram.ReceiverStatus)) {
	r.handlersLock.Lock()
	defer r.handlersLock.Unlock()
	r.receiverStatusHandler = handler
}

// OnDecodeError registers the handler for lines that could not be decoded.
// The handler runs on the session's goroutine.
func (r *Receiver) OnDecodeError(handler func(line string, err error)) {
	r.handlersLock.Lock()
	defer r.handlersLock.Unlock()
	r.decodeErrorHandler = handler
}

func (r *Receiver) handleStructuredAlert(message telegram.StructuredAlert) {
	r.handlersLock.RLock()
	handler := r.structuredAlertHandler
	r.handlersLock.RUnlock()
	if handler != nil {
		handler(message)
	}
}

func (r *Receiver) handleRaw(message telegram.Raw) {
	r.handlersLock.RLock()
	handler := r.rawHandler
	r.handlersLock.RUnlock()
	if handler != nil {
		handler(message)
	}
}

func (r *Receiver) handleReceiverStatus(message telegram.ReceiverStatus) {
	r.handlersLock.RLock()
	handler := r.receiverStatusHandler
	r.handlersLock.RUnlock()
	if handler != nil {
		handler(message)
	}
}

func (r *Receiver) handleDecodeError(line string, err error) {
	r.handlersLock.RLock()
	handler := r.decodeErrorHandler
	r.handlersLock.RUnlock()
	if handler != nil {
		handler(line, err)
	}
}

func (r *Receiver) trace(args ...interface{}) {
	if r.tracer == nil {
		return
	}
	fmt.Fprint(r.tracer, args...)
}

func (r *Receiver) tracef(format string, args ...interface{}) {
	if r.tracer == nil {
		return
	}
	fmt.Fprintf(r.tracer, format, args...)
}
