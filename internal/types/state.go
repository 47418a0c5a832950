package types

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
)

const (
	stateMagic   = "GBCS"
	stateVersion = 1
	headerSize   = len(stateMagic) + 1 + 8 // magic, version, checksum

	// maxStateSize bounds the decompressed payload accepted by
	// DecodeState. A full snapshot is well under 64KiB.
	maxStateSize = 1 << 20
)

var (
	// ErrStateTruncated is reported when a State is read past its end.
	ErrStateTruncated = errors.New("state: truncated")
	// ErrBadMagic is returned when decoding bytes that were not
	// produced by State.Encode.
	ErrBadMagic = errors.New("state: bad magic")
	// ErrUnsupportedVersion is returned when decoding a state written
	// by a newer encoder.
	ErrUnsupportedVersion = errors.New("state: unsupported version")
	// ErrStateTooLarge is returned when the decompressed payload exceeds
	// maxStateSize.
	ErrStateTooLarge = errors.New("state: too large")
	// ErrChecksumMismatch is returned when the decoded payload does not
	// match the checksum stored in the header.
	ErrChecksumMismatch = errors.New("state: checksum mismatch")
)

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}

// State represents a snapshot of emulated hardware. Components
// append their fields with the Write methods, and read them back
// in the same order with the Read methods.
//
// Reading past the end of the state does not panic; the read returns
// zero and Err reports ErrStateTruncated from then on.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	err          error
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given raw bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// ResetPosition resets the read position, allowing the
// state to be read from the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
	s.err = nil
}

// Err returns the first error encountered while reading.
func (s *State) Err() error {
	return s.err
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = binary.LittleEndian.AppendUint16(s.raw, value)
}

func (s *State) Write32(value uint32) {
	s.raw = binary.LittleEndian.AppendUint32(s.raw, value)
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

// next returns the next n bytes, or nil if fewer than n remain.
func (s *State) next(n int) []byte {
	if s.err != nil {
		return nil
	}
	if s.readPosition+n > len(s.raw) {
		s.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrStateTruncated, n, s.readPosition, len(s.raw)-s.readPosition)
		return nil
	}
	b := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return b
}

func (s *State) Read8() uint8 {
	b := s.next(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (s *State) Read16() uint16 {
	b := s.next(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (s *State) Read32() uint32 {
	b := s.next(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// ReadData fills p with the next len(p) bytes of the state.
func (s *State) ReadData(p []byte) {
	b := s.next(len(p))
	if b == nil {
		return
	}
	copy(p, b)
}

func (s *State) Bytes() []byte {
	return s.raw
}

// Checksum returns the xxhash of the raw state data.
func (s *State) Checksum() uint64 {
	return xxhash.Sum64(s.raw)
}

// Encode returns the state framed with a header and checksum, with
// the payload brotli compressed.
func (s *State) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(headerSize + len(s.raw)/2)
	buf.WriteString(stateMagic)
	buf.WriteByte(stateVersion)

	var sum [8]byte
	binary.LittleEndian.PutUint64(sum[:], s.Checksum())
	buf.Write(sum[:])

	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write(s.raw); err != nil {
		return nil, fmt.Errorf("state: compressing: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("state: compressing: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeState reverses State.Encode, verifying the header and the
// payload checksum.
func DecodeState(b []byte) (*State, error) {
	if len(b) < headerSize || string(b[:len(stateMagic)]) != stateMagic {
		return nil, ErrBadMagic
	}
	if v := b[len(stateMagic)]; v != stateVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	sum := binary.LittleEndian.Uint64(b[len(stateMagic)+1 : headerSize])

	r := io.LimitReader(brotli.NewReader(bytes.NewReader(b[headerSize:])), maxStateSize+1)
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("state: decompressing: %w", err)
	}
	if len(raw) > maxStateSize {
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrStateTooLarge, maxStateSize)
	}

	s := StateFromBytes(raw)
	if got := s.Checksum(); got != sum {
		return nil, fmt.Errorf("%w: expected %016x, got %016x", ErrChecksumMismatch, sum, got)
	}

	return s, nil
}
