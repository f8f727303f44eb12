// ABOUTME: File-backed word source/sink for io.Reader/io.Writer/io.Seeker.
// ABOUTME: Words are serialized little-endian on the wire, a fixed choice so streams are portable across machines.
package bitio

import (
	"encoding/binary"
	"fmt"
	"io"
)

// wordBytes is the on-disk size of one word handled by the file backends.
const wordBytes = 8

// FileWordWriter is a WordSink over any io.Writer (a *os.File, a
// bufio.Writer, a socket, ...). Words are written little-endian, a fixed
// on-wire byte order chosen so that a stream produced on one machine can be
// read back correctly on another, regardless of host endianness.
type FileWordWriter struct {
	w io.Writer
}

// NewFileWordWriter wraps w as a WordSink.
func NewFileWordWriter(w io.Writer) *FileWordWriter {
	return &FileWordWriter{w: w}
}

// WriteWord implements WordSink.
func (f *FileWordWriter) WriteWord(word uint64) error {
	var buf [wordBytes]byte
	binary.LittleEndian.PutUint64(buf[:], word)
	if _, err := f.w.Write(buf[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	return nil
}

// FileWordReader is a WordSource over any io.Reader, optionally a
// PositionableWordSource when the underlying reader is also an io.Seeker.
type FileWordReader struct {
	r io.Reader
	s io.Seeker // non-nil only if r also implements io.Seeker
}

// NewFileWordReader wraps r as a WordSource. If r also implements
// io.Seeker, the returned *FileWordReader additionally satisfies
// PositionableWordSource.
func NewFileWordReader(r io.Reader) *FileWordReader {
	fr := &FileWordReader{r: r}
	if s, ok := r.(io.Seeker); ok {
		fr.s = s
	}
	return fr
}

// ReadWord implements WordSource.
func (f *FileWordReader) ReadWord() (uint64, error) {
	var buf [wordBytes]byte
	if _, err := io.ReadFull(f.r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, fmt.Errorf("%w: %v", ErrUnexpectedEOF, err)
		}
		return 0, fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// SetPosition implements PositionableWordSource. It panics-free errors if
// the wrapped reader is not seekable.
func (f *FileWordReader) SetPosition(wordIndex int) error {
	if f.s == nil {
		return fmt.Errorf("%w: underlying reader does not support seeking", ErrBackendIO)
	}
	if _, err := f.s.Seek(int64(wordIndex)*wordBytes, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendIO, err)
	}
	return nil
}
