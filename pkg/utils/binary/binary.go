package binary

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
)

// chunk bounds how many bytes a single read allocates ahead of the data
// actually arriving, so a corrupt length field cannot force a huge buffer.
const chunk = 64 * 1024

type BufferedWriteCloser struct {
	w     *bufio.Writer
	wc    io.WriteCloser
	count int
}

func NewBufferedWriteCloser(w io.WriteCloser) *BufferedWriteCloser {
	return &BufferedWriteCloser{
		w:  bufio.NewWriter(w),
		wc: w,
	}
}

func (bw *BufferedWriteCloser) Total() int {
	return bw.count
}

func (bw *BufferedWriteCloser) Write(p []byte) (n int, err error) {
	n, err = bw.w.Write(p)
	bw.count += n
	return n, err
}

func (bw *BufferedWriteCloser) Close() error {
	if err := bw.w.Flush(); err != nil {
		bw.wc.Close()
		return err
	}
	return bw.wc.Close()
}

type BufferedReadCloser struct {
	r  *bufio.Reader
	rc io.ReadCloser
}

func NewBufferedReadCloser(r io.ReadCloser) *BufferedReadCloser {
	return &BufferedReadCloser{
		r:  bufio.NewReader(r),
		rc: r,
	}
}

func (br *BufferedReadCloser) Read(p []byte) (n int, err error) {
	return br.r.Read(p)
}

func (br *BufferedReadCloser) Close() error {
	return br.rc.Close()
}

type ByteWriter struct {
	w io.WriteCloser
}

func NewByteWriter(w io.WriteCloser) *ByteWriter {
	return &ByteWriter{
		w: w,
	}
}

func NewBufferedByteWriter(w io.WriteCloser) *ByteWriter {
	return NewByteWriter(NewBufferedWriteCloser(w))
}

func (bw *ByteWriter) WriteUint64(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := bw.w.Write(b[:])
	return err
}

// WriteBytes writes a u64 length prefix followed by the raw bytes.
func (bw *ByteWriter) WriteBytes(b []byte) error {
	if err := bw.WriteUint64(uint64(len(b))); err != nil {
		return err
	}
	_, err := bw.w.Write(b)
	return err
}

func (bw *ByteWriter) WriteString(s string) error {
	return bw.WriteBytes([]byte(s))
}

// WriteUint64s writes a u64 count followed by every value as u64.
func (bw *ByteWriter) WriteUint64s(values []uint64) error {
	if err := bw.WriteUint64(uint64(len(values))); err != nil {
		return err
	}
	buf := make([]byte, 0, min(len(values)*8, chunk))
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, v)
		if len(buf) == cap(buf) {
			if _, err := bw.w.Write(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		_, err := bw.w.Write(buf)
		return err
	}
	return nil
}

func (bw *ByteWriter) Close() error {
	return bw.w.Close()
}

type ByteReader struct {
	r io.ReadCloser
}

func NewByteReader(r io.ReadCloser) *ByteReader {
	return &ByteReader{
		r: r,
	}
}

func NewBufferedByteReader(r io.ReadCloser) *ByteReader {
	return NewByteReader(NewBufferedReadCloser(r))
}

// ReadUint64 returns io.EOF only when the stream ends cleanly before the
// value; a value cut short returns io.ErrUnexpectedEOF.
func (br *ByteReader) ReadUint64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(br.r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func (br *ByteReader) ReadBytes() ([]byte, error) {
	length, err := br.ReadUint64()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(int(min(length, chunk)))
	n, err := io.CopyN(&buf, br.r, int64(min(length, 1<<62)))
	if uint64(n) < length {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

func (br *ByteReader) ReadString() (string, error) {
	b, err := br.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (br *ByteReader) ReadUint64s() ([]uint64, error) {
	count, err := br.ReadUint64()
	if err != nil {
		return nil, err
	}

	values := make([]uint64, 0, min(count, chunk/8))
	buf := make([]byte, chunk)
	for remaining := count; remaining > 0; {
		n := min(remaining, chunk/8)
		b := buf[:n*8]
		if _, err := io.ReadFull(br.r, b); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		for i := 0; i < len(b); i += 8 {
			values = append(values, binary.LittleEndian.Uint64(b[i:]))
		}
		remaining -= n
	}
	return values, nil
}

// AtEOF consumes at most one byte and reports whether the stream was
// already exhausted.
func (br *ByteReader) AtEOF() (bool, error) {
	var b [1]byte
	n, err := io.ReadFull(br.r, b[:])
	if n > 0 {
		return false, nil
	}
	if err == io.EOF {
		return true, nil
	}
	return false, err
}

func (br *ByteReader) Close() error {
	return br.r.Close()
}
