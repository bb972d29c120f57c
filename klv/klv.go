// Package klv reads SMPTE 377 KLV (Key-Length-Value) records: the 16-byte
// universal label, its BER length, and the classified key type that
// dispatches MXF handling.
package klv

import (
	"errors"
	"fmt"
	"io"

	"github.com/nathanpbutler/opx/opxerr"
)

// ulPrefix is the SMPTE Universal Label prefix every MXF key must start
// with.
var ulPrefix = [4]byte{0x06, 0x0E, 0x2B, 0x34}

// KeyLen is the fixed length of an MXF universal label key.
const KeyLen = 16

// Record is one decoded KLV triple: the raw 16-byte key, its classified
// type, the decoded length, and the value bytes.
type Record struct {
	Key    [KeyLen]byte
	Kind   KeyType
	Length uint64
	Value  []byte
}

// ReadRecord reads one KLV record from r: a 16-byte key, a BER length,
// then that many value bytes. Returns opxerr.ErrNotMXF if the key does not
// carry the SMPTE UL prefix, or opxerr.ErrBadBERLength if the length field
// is malformed or the stream is truncated before the declared length.
func ReadRecord(r io.Reader) (*Record, error) {
	var key [KeyLen]byte
	if _, err := io.ReadFull(r, key[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("klv: read key: %w", err)
	}
	if key[0] != ulPrefix[0] || key[1] != ulPrefix[1] || key[2] != ulPrefix[2] || key[3] != ulPrefix[3] {
		return nil, opxerr.ErrNotMXF
	}

	length, err := ReadBERLength(&byteReader{r: r})
	if err != nil {
		return nil, err
	}

	value := make([]byte, length)
	if _, err := io.ReadFull(r, value); err != nil {
		return nil, fmt.Errorf("%w: truncated value (want %d bytes): %v", opxerr.ErrBadBERLength, length, err)
	}

	return &Record{
		Key:    key,
		Kind:   Classify(key[:]),
		Length: length,
		Value:  value,
	}, nil
}

// ReadBERLength decodes a BER length field: a short form when
// the first byte's top bit is clear, else a long form whose low 7 bits
// give the big-endian byte count (at most 8, else opxerr.ErrBadBERLength).
func ReadBERLength(r io.ByteReader) (uint64, error) {
	b0, err := r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", opxerr.ErrBadBERLength, err)
	}
	if b0&0x80 == 0 {
		return uint64(b0), nil
	}

	k := int(b0 & 0x7F)
	if k > 8 {
		return 0, fmt.Errorf("%w: long-form byte count %d > 8", opxerr.ErrBadBERLength, k)
	}

	var length uint64
	for i := 0; i < k; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: truncated long-form length: %v", opxerr.ErrBadBERLength, err)
		}
		length = length<<8 | uint64(b)
	}
	return length, nil
}

// byteReader adapts an io.Reader to io.ByteReader one byte at a time,
// without the read-ahead buffering bufio.Reader would do. ReadRecord needs
// this because the value bytes immediately follow the BER length in the
// same underlying stream; buffering ahead would silently consume them.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		return 0, err
	}
	return b.buf[0], nil
}

// EncodeBERLength encodes n using the shortest valid BER form, for
// callers constructing KLV streams (e.g. MXF Extract sinks that prepend
// the raw header).
func EncodeBERLength(n uint64) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var tmp [8]byte
	k := 0
	for v := n; v > 0; v >>= 8 {
		tmp[k] = byte(v)
		k++
	}
	out := make([]byte, 1+k)
	out[0] = 0x80 | byte(k)
	for i := 0; i < k; i++ {
		out[1+i] = tmp[k-1-i]
	}
	return out
}
