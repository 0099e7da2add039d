package main

import (
	"bytes"
	"errors"
)

// newTestDiagnostics returns a Diagnostics sink discarding its output, for
// tests that only care about the crashed/warning/error latches.
func newTestDiagnostics() *Diagnostics {
	return NewDiagnostics(&bytes.Buffer{}, false)
}

// fakeRDRAMBackend is an in-memory RDRAMBackend for tests, valid over
// [0, size).
type fakeRDRAMBackend struct {
	data []byte
	pos  int64
}

func newFakeRDRAMBackend(size int) *fakeRDRAMBackend {
	return &fakeRDRAMBackend{data: make([]byte, size)}
}

func (b *fakeRDRAMBackend) Open(string) error { return nil }
func (b *fakeRDRAMBackend) Close() error      { return nil }
func (b *fakeRDRAMBackend) Pos() uint64       { return uint64(b.pos) }

func (b *fakeRDRAMBackend) AddrValid(addr uint32) bool {
	return int64(addr) < int64(len(b.data))
}

func (b *fakeRDRAMBackend) Seek(addr uint32) bool {
	if !b.AddrValid(addr) {
		return false
	}
	b.pos = int64(addr)
	return true
}

func (b *fakeRDRAMBackend) Read(buf []byte) (int, error) {
	n := copy(buf, b.data[b.pos:])
	b.pos += int64(n)
	return n, nil
}

func (b *fakeRDRAMBackend) ReadAt(buf []byte, addr uint32) bool {
	if !b.Seek(addr) {
		return false
	}
	n, _ := b.Read(buf)
	return n == len(buf)
}

// failingBackend is an RDRAMBackend whose Open always fails, for exercising
// analyze's startup-failure path.
type failingBackend struct{}

func (failingBackend) Open(string) error           { return errors.New("boom") }
func (failingBackend) Close() error                { return nil }
func (failingBackend) Pos() uint64                 { return 0 }
func (failingBackend) AddrValid(addr uint32) bool  { return false }
func (failingBackend) Seek(addr uint32) bool       { return false }
func (failingBackend) Read(buf []byte) (int, error) { return 0, errors.New("boom") }
func (failingBackend) ReadAt(buf []byte, addr uint32) bool { return false }
