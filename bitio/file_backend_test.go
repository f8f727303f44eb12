package bitio

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileWordWriterLittleEndianOnWire(t *testing.T) {
	var buf bytes.Buffer
	w := NewFileWordWriter(&buf)
	require.NoError(t, w.WriteWord(0x0102030405060708))
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, buf.Bytes())
}

func TestFileWordReaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewFileWordWriter(&buf)
	words := []uint64{1, 2, 0xDEADBEEFCAFEBABE}
	for _, wd := range words {
		require.NoError(t, w.WriteWord(wd))
	}

	r := NewFileWordReader(bytes.NewReader(buf.Bytes()))
	for _, want := range words {
		got, err := r.ReadWord()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := r.ReadWord()
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestFileWordReaderSeekableAcceptsSetPosition(t *testing.T) {
	r := NewFileWordReader(bytes.NewReader(nil))
	err := r.SetPosition(0)
	require.NoError(t, err)
}

func TestFileWordReaderNonSeekableRejectsSetPosition(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	r := NewFileWordReader(pr)
	err := r.SetPosition(1)
	require.ErrorIs(t, err, ErrBackendIO)
}
