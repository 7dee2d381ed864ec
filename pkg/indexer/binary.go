package indexer

import (
	"blockindex/pkg/utils/binary"
	"blockindex/pkg/utils/sys"
	"errors"
	"fmt"
	"io"
	"os"
)

// WriteIndex encodes idx as
//
//	entry_count:u64 { word_len:u64 word:[u8] posting_len:u64 postings:[u64] }*
//
// in little-endian, entries in map order.
func WriteIndex(bw *binary.ByteWriter, idx InvertedIndex) error {
	if err := bw.WriteUint64(uint64(len(idx))); err != nil {
		return err
	}
	for word, postings := range idx {
		if err := bw.WriteString(word); err != nil {
			return fmt.Errorf("failed to write word %q: %w", word, err)
		}
		if err := bw.WriteUint64s(postings); err != nil {
			return fmt.Errorf("failed to write postings of %q: %w", word, err)
		}
	}
	return nil
}

var (
	errDuplicateWord   = errors.New("duplicate word entry")
	errUnsortedPosting = errors.New("postings not strictly ascending")
	errTrailingData    = errors.New("trailing data after last entry")
)

// ReadIndex decodes an index written by WriteIndex. A short read, a
// repeated word, a posting list that is not strictly ascending or bytes
// after the last entry fail with ErrFormat and no index is returned.
func ReadIndex(br *binary.ByteReader) (InvertedIndex, error) {
	count, err := br.ReadUint64()
	if err != nil {
		return nil, readError("entry count", err)
	}

	index := make(InvertedIndex, min(count, 1<<16))
	for i := uint64(0); i < count; i++ {
		word, err := br.ReadString()
		if err != nil {
			return nil, readError(fmt.Sprintf("word of entry %d/%d", i, count), err)
		}
		if _, ok := index[word]; ok {
			return nil, formatError(fmt.Sprintf("read entry %d/%d", i, count), "", fmt.Errorf("%w %q", errDuplicateWord, word))
		}
		postings, err := br.ReadUint64s()
		if err != nil {
			return nil, readError(fmt.Sprintf("postings of entry %d/%d", i, count), err)
		}
		for j := 1; j < len(postings); j++ {
			if postings[j-1] >= postings[j] {
				return nil, formatError(fmt.Sprintf("read entry %d/%d", i, count), "", fmt.Errorf("%w for %q at %d", errUnsortedPosting, word, j))
			}
		}
		index[word] = postings
	}

	eof, err := br.AtEOF()
	if err != nil {
		return nil, fmt.Errorf("failed to read end of index: %w", err)
	}
	if !eof {
		return nil, formatError("read end of index", "", errTrailingData)
	}

	return index, nil
}

// readError reports truncation as ErrFormat; other reader failures are
// passed through for the caller to classify.
func readError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return formatError("read "+what, "", io.ErrUnexpectedEOF)
	}
	return fmt.Errorf("failed to read %s: %w", what, err)
}

// SaveIndex writes idx to path, replacing any existing file. A failed
// write leaves the partial file in place.
func SaveIndex(path string, idx InvertedIndex) error {
	file, err := sys.CreateFile(path)
	if err != nil {
		return ioError("create index file", path, err)
	}

	bw := binary.NewBufferedByteWriter(file)
	if err := WriteIndex(bw, idx); err != nil {
		bw.Close()
		return ioError("write index file", path, err)
	}
	if err := bw.Close(); err != nil {
		return ioError("write index file", path, err)
	}
	return nil
}

func LoadIndex(path string) (InvertedIndex, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ioError("open index file", path, err)
	}

	br := binary.NewBufferedByteReader(file)
	defer br.Close()

	index, err := ReadIndex(br)
	if err != nil {
		var indexErr *Error
		if errors.As(err, &indexErr) {
			indexErr.Path = path
			return nil, indexErr
		}
		return nil, ioError("read index file", path, err)
	}
	return index, nil
}
