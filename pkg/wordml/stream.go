package wordml

import (
	"encoding/binary"
	"io"
)

// Streaming framing for progressive delivery: each frame is a 4-byte
// big-endian length prefix followed by that many bytes of one complete,
// independently valid package. A zero-length frame terminates the stream.

// WriteFrame writes one framed package.
func WriteFrame(w io.Writer, pkg []byte) error {
	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(pkg)))
	if _, err := w.Write(prefix[:]); err != nil {
		return err
	}
	_, err := w.Write(pkg)
	return err
}

// WriteStreamEnd writes the terminal zero-length marker.
func WriteStreamEnd(w io.Writer) error {
	var prefix [4]byte
	_, err := w.Write(prefix[:])
	return err
}

// ReadFrame reads one framed package. It returns io.EOF after the terminal
// marker.
func ReadFrame(r io.Reader) ([]byte, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, err
	}
	size := binary.BigEndian.Uint32(prefix[:])
	if size == 0 {
		return nil, io.EOF
	}
	pkg := make([]byte, size)
	if _, err := io.ReadFull(r, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// StreamSlices writes progressively larger slices of a package as frames:
// step units, then 2*step, and so on until the whole body has been sent,
// followed by the terminal marker. Each call re-slices the source from
// scratch, so frames never drift apart.
func StreamSlices(w io.Writer, pkg []byte, step int) error {
	if step <= 0 {
		step = 1
	}
	total, err := CountUnits(pkg)
	if err != nil {
		return err
	}
	for n := step; ; n += step {
		if n > total {
			n = total
		}
		sliced, err := Slice(pkg, n)
		if err != nil {
			return err
		}
		if err := WriteFrame(w, sliced); err != nil {
			return err
		}
		if n >= total {
			break
		}
	}
	return WriteStreamEnd(w)
}
