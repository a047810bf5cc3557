package com

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemory_Read(t *testing.T) {
	tt := []struct {
		desc     string
		in       string
		bufLen   int
		expected string
	}{
		{"short", "SS,A,123", 10, "SS,A,123"},
		{"exact", "SS,A,123", 8, "SS,A,123"},
		{"long", "SS,A,123", 3, "SS,"},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			rw := NewInMemory()
			rw.PrepareRead([]byte(tc.in))
			buf := make([]byte, tc.bufLen)

			n, err := rw.Read(buf)

			assert.NoError(t, err)
			assert.Equal(t, len(tc.expected), n)
			assert.Equal(t, tc.expected, string(buf[0:n]))
		})
	}
}

func TestInMemory_ReadClose(t *testing.T) {
	rw := NewInMemory()

	go func() {
		time.Sleep(100 * time.Nanosecond)
		rw.Close()
	}()

	buf := make([]byte, 10)
	n, err := rw.Read(buf)

	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 0, n)
}

func TestInMemory_ReadLater(t *testing.T) {
	rw := NewInMemory()

	go func() {
		time.Sleep(100 * time.Nanosecond)
		rw.PrepareRead([]byte("SS,1,42\r"))
	}()

	buf := make([]byte, 10)
	n, err := rw.Read(buf)

	assert.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "SS,1,42\r", string(buf[0:n]))
}

func TestInMemory_CloseWhenEmpty(t *testing.T) {
	rw := NewInMemory()
	rw.PrepareRead([]byte("SS,1,42\r"))
	rw.CloseWhenEmpty(true)

	buf := make([]byte, 10)
	n, err := rw.Read(buf)

	assert.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = rw.Read(buf)

	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 0, n)
}
