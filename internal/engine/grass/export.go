package grass

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	gomath "math"

	"github.com/Faultbox/meadow/pkg/math"
)

// BladeSize is the encoded size of one blade in bytes.
const BladeSize = RecordsPerBlade * 4 * 4

// ErrTruncated is returned when encoded data ends inside a blade.
var ErrTruncated = errors.New("truncated blade data")

// WriteTo writes the field as little-endian float32 records in vertex buffer
// order, with no header.
func (f Field) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, BladeSize)
	var n int64
	for i := range f {
		off := 0
		for _, r := range f[i] {
			for _, v := range r.Array() {
				binary.LittleEndian.PutUint32(buf[off:], gomath.Float32bits(v))
				off += 4
			}
		}
		written, err := w.Write(buf)
		n += int64(written)
		if err != nil {
			return n, fmt.Errorf("blade %d: %w", i, err)
		}
	}
	return n, nil
}

// ReadField decodes data written by WriteTo.
func ReadField(r io.Reader) (Field, error) {
	var f Field
	buf := make([]byte, BladeSize)
	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			return f, nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w after %d blades", ErrTruncated, len(f))
		}
		if err != nil {
			return nil, err
		}

		var b Blade
		for i := range b {
			base := i * 16
			b[i] = math.Vec4{
				X: gomath.Float32frombits(binary.LittleEndian.Uint32(buf[base:])),
				Y: gomath.Float32frombits(binary.LittleEndian.Uint32(buf[base+4:])),
				Z: gomath.Float32frombits(binary.LittleEndian.Uint32(buf[base+8:])),
				W: gomath.Float32frombits(binary.LittleEndian.Uint32(buf[base+12:])),
			}
		}
		f = append(f, b)
	}
}
