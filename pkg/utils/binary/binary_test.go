package binary

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func TestByteReadWrite(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBufferedByteWriter(nopWriteCloser{&buf})
	require.NoError(t, bw.WriteUint64(42))
	require.NoError(t, bw.WriteString("hello"))
	require.NoError(t, bw.WriteString(""))
	require.NoError(t, bw.WriteUint64s([]uint64{1, 2, 1 << 40}))
	require.NoError(t, bw.Close())
	require.Equal(t, 8+8+5+8+8+3*8, buf.Len())

	br := NewBufferedByteReader(io.NopCloser(&buf))
	v, err := br.ReadUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(42), v)

	s, err := br.ReadString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	s, err = br.ReadString()
	require.NoError(t, err)
	require.Equal(t, "", s)

	values, err := br.ReadUint64s()
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 1 << 40}, values)

	_, err = br.ReadUint64()
	require.Equal(t, io.EOF, err)
}

func TestByteReaderShortReads(t *testing.T) {
	var buf bytes.Buffer
	bw := NewByteWriter(nopWriteCloser{&buf})
	require.NoError(t, bw.WriteUint64(1<<50))
	buf.WriteString("abc")

	br := NewByteReader(io.NopCloser(bytes.NewReader(buf.Bytes())))
	_, err := br.ReadBytes()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	br = NewByteReader(io.NopCloser(bytes.NewReader(buf.Bytes())))
	_, err = br.ReadUint64s()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	br = NewByteReader(io.NopCloser(bytes.NewReader([]byte{1, 2, 3})))
	_, err = br.ReadUint64()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestByteReaderAtEOF(t *testing.T) {
	br := NewByteReader(io.NopCloser(bytes.NewReader(nil)))
	eof, err := br.AtEOF()
	require.NoError(t, err)
	require.True(t, eof)

	br = NewByteReader(io.NopCloser(bytes.NewReader([]byte{7})))
	eof, err = br.AtEOF()
	require.NoError(t, err)
	require.False(t, eof)
}
