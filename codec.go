// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// The wire format is a uint32 container count followed by one record per
// container in ascending key order: key (uint16), type (uint8), payload
// size in bytes (uint32) and the payload itself. All integers are
// little-endian regardless of the host byte order.
var isLittleEndian = binary.LittleEndian.Uint16([]byte{1, 0}) == 1

// ToBytes serializes the bitmap into a newly allocated byte slice.
func (rb *Bitmap) ToBytes() []byte {
	var buf bytes.Buffer
	buf.Grow(int(rb.GetSerializedSizeInBytes()))
	if _, err := rb.WriteTo(&buf); err != nil {
		panic(err) // bytes.Buffer does not fail
	}
	return buf.Bytes()
}

// GetSerializedSizeInBytes returns the exact number of bytes WriteTo
// would produce.
func (rb *Bitmap) GetSerializedSizeInBytes() uint64 {
	size := uint64(4)
	for i := range rb.containers {
		size += 7 + 2*uint64(len(rb.containers[i].Data))
	}
	return size
}

// WriteTo writes the serialized bitmap into the writer and returns the
// number of bytes written.
func (rb *Bitmap) WriteTo(w io.Writer) (int64, error) {
	var header [7]byte
	binary.LittleEndian.PutUint32(header[:4], uint32(len(rb.containers)))
	n, err := w.Write(header[:4])
	written := int64(n)
	if err != nil {
		return written, err
	}

	for i := range rb.containers {
		c := &rb.containers[i]
		binary.LittleEndian.PutUint16(header[0:2], rb.index[i])
		header[2] = uint8(c.Type)
		binary.LittleEndian.PutUint32(header[3:7], uint32(2*len(c.Data)))
		if n, err = w.Write(header[:7]); err != nil {
			return written + int64(n), err
		}
		written += int64(n)

		m, err := writePayload(w, c)
		written += m
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// writePayload writes the container data in little-endian byte order. On
// little-endian hosts this is a straight copy of the backing memory.
func writePayload(w io.Writer, c *container) (int64, error) {
	if isLittleEndian {
		n, err := w.Write(asBytes(c.Data))
		return int64(n), err
	}

	buf := make([]byte, 2*len(c.Data))
	if c.Type == typeBitmap {
		// Bitmap payloads are defined over the 64-bit word view, which
		// on big-endian hosts does not match the uint16 view.
		for i, word := range c.bmpWords() {
			binary.LittleEndian.PutUint64(buf[8*i:], word)
		}
	} else {
		for i, v := range c.Data {
			binary.LittleEndian.PutUint16(buf[2*i:], v)
		}
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// FromBytes deserializes a bitmap from a byte slice.
func FromBytes(data []byte) (*Bitmap, error) {
	return ReadFrom(bytes.NewReader(data))
}

// ReadFrom deserializes a bitmap from the reader.
func ReadFrom(r io.Reader) (*Bitmap, error) {
	rb := New()
	if _, err := rb.ReadFrom(r); err != nil {
		return nil, err
	}
	return rb, nil
}

// ReadFrom replaces the bitmap contents with a bitmap read from the reader
// and returns the number of bytes read. The input is validated so that a
// corrupt or hostile stream cannot produce a bitmap that violates the
// internal invariants.
func (rb *Bitmap) ReadFrom(r io.Reader) (int64, error) {
	var header [7]byte
	n, err := io.ReadFull(r, header[:4])
	read := int64(n)
	if err != nil {
		return read, errors.Wrap(err, "roaring: read container count")
	}
	count := binary.LittleEndian.Uint32(header[:4])

	rb.Clear()
	prev := -1
	for i := uint32(0); i < count; i++ {
		if n, err = io.ReadFull(r, header[:7]); err != nil {
			return read + int64(n), errors.Wrap(err, "roaring: read container header")
		}
		read += int64(n)

		key := binary.LittleEndian.Uint16(header[0:2])
		ctyp := ctype(header[2])
		size := binary.LittleEndian.Uint32(header[3:7])
		if int(key) <= prev {
			return read, errors.Errorf("roaring: container keys out of order at %d", key)
		}
		prev = int(key)

		c, m, err := readContainer(r, ctyp, size)
		read += m
		if err != nil {
			return read, err
		}

		rb.index = append(rb.index, key)
		rb.containers = append(rb.containers, c)
	}
	return read, nil
}

func readContainer(r io.Reader, ctyp ctype, size uint32) (container, int64, error) {
	var c container
	switch {
	case size == 0:
		return c, 0, errors.New("roaring: empty container")
	case size%2 != 0:
		return c, 0, errors.Errorf("roaring: odd container payload size %d", size)
	case ctyp == typeBitmap && size != bmpSizeBytes:
		return c, 0, errors.Errorf("roaring: bitmap container payload size %d", size)
	case ctyp == typeRun && (size%4 != 0 || size > 4*runMaxSize):
		return c, 0, errors.Errorf("roaring: run container payload size %d", size)
	case ctyp == typeArray && size > 2*arrMaxSize:
		return c, 0, errors.Errorf("roaring: array container payload size %d", size)
	case ctyp != typeArray && ctyp != typeBitmap && ctyp != typeRun:
		return c, 0, errors.Errorf("roaring: unknown container type %d", ctyp)
	}

	c.Type = ctyp
	c.Data = make([]uint16, size/2)
	n, err := readPayload(r, &c)
	if err != nil {
		return c, n, errors.Wrap(err, "roaring: read container payload")
	}

	switch ctyp {
	case typeArray:
		for i := 1; i < len(c.Data); i++ {
			if c.Data[i] <= c.Data[i-1] {
				return c, n, errors.New("roaring: array container not sorted")
			}
		}
		c.Size = uint32(len(c.Data))
	case typeBitmap:
		c.Size = uint32(popcountWords(c.bmpWords()))
	case typeRun:
		for j := 0; j+1 < len(c.Data); j += 2 {
			if c.Data[j] > c.Data[j+1] {
				return c, n, errors.New("roaring: inverted run in run container")
			}
			if j > 0 && int(c.Data[j]) <= int(c.Data[j-1])+1 {
				return c, n, errors.New("roaring: overlapping runs in run container")
			}
			c.Size += uint32(c.Data[j+1]-c.Data[j]) + 1
		}
	}
	return c, n, nil
}

// readPayload reads the container data in little-endian byte order. On
// little-endian hosts it reads straight into the backing memory.
func readPayload(r io.Reader, c *container) (int64, error) {
	if isLittleEndian {
		n, err := io.ReadFull(r, asBytes(c.Data))
		return int64(n), err
	}

	buf := make([]byte, 2*len(c.Data))
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return int64(n), err
	}
	if c.Type == typeBitmap {
		words := c.bmpWords()
		for i := range words {
			words[i] = binary.LittleEndian.Uint64(buf[8*i:])
		}
	} else {
		for i := range c.Data {
			c.Data[i] = binary.LittleEndian.Uint16(buf[2*i:])
		}
	}
	return int64(n), nil
}
