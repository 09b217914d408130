package sink

import (
	"fmt"
	"io"
	"math"

	"fortio.org/safecast"

	"printfmt/internal/diag"
)

// Kind selects the output variant.
type Kind uint8

const (
	KindStream Kind = iota
	KindDescriptor
	KindBuffer
	KindAllocated
)

func (k Kind) String() string {
	switch k {
	case KindStream:
		return "stream"
	case KindDescriptor:
		return "descriptor"
	case KindBuffer:
		return "buffer"
	case KindAllocated:
		return "allocated"
	}
	return "unknown"
}

// NoLimit disables write suppression on a buffer sink.
const NoLimit = math.MaxUint64

// allocBase is the starting capacity of the allocated-buffer sink.
const allocBase = 16

// Sink is the single-byte output target. Written counts every
// character the template produced, including ones a capped buffer
// suppressed, so it is the C99 §7.19.6 return value.
type Sink struct {
	kind Kind

	w  io.Writer // KindStream
	fd int       // KindDescriptor

	buf []byte // KindBuffer
	off int

	alloc []byte // KindAllocated; len = occupied, cap = capacity

	limit   uint64
	written uint64

	one [1]byte
}

// NewStream wraps an io.Writer.
func NewStream(w io.Writer) *Sink {
	return &Sink{kind: KindStream, w: w, limit: NoLimit}
}

// NewDescriptor wraps a raw file descriptor. Each Emit issues one
// single-byte write; short writes and EINTR are failures, not retried.
func NewDescriptor(fd int) *Sink {
	return &Sink{kind: KindDescriptor, fd: fd, limit: NoLimit}
}

// NewBuffer wraps a caller buffer. limit caps the stored bytes
// (terminator slot included); pass NoLimit to bound only by len(buf).
func NewBuffer(buf []byte, limit uint64) *Sink {
	return &Sink{kind: KindBuffer, buf: buf, limit: limit}
}

// NewAllocated creates the growing-buffer sink used by Asprintf.
func NewAllocated() *Sink {
	return &Sink{
		kind:  KindAllocated,
		alloc: make([]byte, 0, allocBase),
		limit: NoLimit,
	}
}

func (s *Sink) Kind() Kind { return s.kind }

// Written returns the running character count.
func (s *Sink) Written() uint64 { return s.written }

// Count converts the running count to the public int return value.
func (s *Sink) Count() (int, error) {
	n, err := safecast.Conv[int](s.written)
	if err != nil {
		return -1, fmt.Errorf("character count overflow: %w", err)
	}
	return n, nil
}

// Emit writes one byte to the destination.
func (s *Sink) Emit(b byte) error {
	switch s.kind {
	case KindStream:
		s.one[0] = b
		if _, err := s.w.Write(s.one[:]); err != nil {
			return diag.NewError(diag.SinkWriteFailed, diag.Span{},
				fmt.Sprintf("stream write: %v", err))
		}
		s.written++
		return nil

	case KindDescriptor:
		s.one[0] = b
		if err := writeByteFD(s.fd, s.one[:]); err != nil {
			return diag.NewError(diag.SinkWriteFailed, diag.Span{},
				fmt.Sprintf("fd %d write: %v", s.fd, err))
		}
		s.written++
		return nil

	case KindBuffer:
		if s.limit == 0 {
			// Count-only sink.
			s.written++
			return nil
		}
		if s.written >= s.limit-1 {
			// Cap reached; the final slot is reserved for the terminator.
			s.written++
			return nil
		}
		if s.off < len(s.buf) {
			s.buf[s.off] = b
			s.off++
		}
		s.written++
		return nil

	case KindAllocated:
		if len(s.alloc) == cap(s.alloc) {
			if err := s.growAllocated(); err != nil {
				s.alloc = nil
				return err
			}
		}
		s.alloc = append(s.alloc, b)
		s.written++
		return nil
	}
	return diag.NewError(diag.SinkWriteFailed, diag.Span{}, "sink has no destination")
}

// growAllocated doubles capacity; when doubling would overflow int it
// fails with SinkOverflow instead of growing.
func (s *Sink) growAllocated() error {
	old := cap(s.alloc)
	if old == 0 {
		s.alloc = make([]byte, 0, allocBase)
		return nil
	}
	if old > math.MaxInt/2 {
		return diag.NewError(diag.SinkOverflow, diag.Span{},
			"allocated buffer cannot grow further")
	}
	next := make([]byte, len(s.alloc), old*2)
	copy(next, s.alloc)
	s.alloc = next
	return nil
}

// Terminate writes the trailing NUL into a caller buffer. For the
// capped variant the reserved slot always fits; the uncapped variant
// skips it when the buffer is exactly full.
func (s *Sink) Terminate() {
	if s.kind != KindBuffer || s.limit == 0 {
		return
	}
	if s.off < len(s.buf) {
		s.buf[s.off] = 0
	}
}

// TakeAllocated terminates the allocated buffer and transfers it to the
// caller. The returned slice's length equals the character count; the
// NUL sits one past the end, inside capacity.
func (s *Sink) TakeAllocated() ([]byte, error) {
	if s.kind != KindAllocated {
		return nil, fmt.Errorf("sink is %s, not allocated", s.kind)
	}
	if len(s.alloc) == cap(s.alloc) {
		if err := s.growAllocated(); err != nil {
			s.alloc = nil
			return nil, err
		}
	}
	n := len(s.alloc)
	s.alloc = append(s.alloc, 0)
	out := s.alloc[:n]
	s.alloc = nil
	return out, nil
}

// Discard releases the allocated buffer after a failed call.
func (s *Sink) Discard() {
	if s.kind == KindAllocated {
		s.alloc = nil
	}
}
