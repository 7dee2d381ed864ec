package parser

import (
	"blockindex/pkg/utils/stream"
)

// Block is a whitespace-bounded slice of the corpus. Data aliases the
// corpus and must not be modified.
type Block struct {
	ID   uint64
	Data []byte
}

func (b Block) Len() int {
	return len(b.Data)
}

// SplitBlocks cuts content into blocks of at most size bytes without
// splitting a word, unless a single word is longer than size. Whitespace
// between blocks belongs to neither block.
func SplitBlocks(content []byte, size int, consumer stream.Consumer[Block]) {
	if len(content) == 0 {
		return
	}
	if size <= 0 || len(content) <= size {
		consumer.Consume(Block{ID: 0, Data: content})
		return
	}

	var id uint64
	start := 0
	for start < len(content) {
		end := min(start+size, len(content))

		if end < len(content) {
			for end > start && !isSpace(content[end]) {
				end--
			}
			if end == start {
				end = min(start+size, len(content))
			}
		}

		consumer.Consume(Block{ID: id, Data: content[start:end:end]})
		id++
		start = end

		for start < len(content) && isSpace(content[start]) {
			start++
		}
	}
}

func Blocks(content []byte, size int) []Block {
	consumer := stream.NewArrayConsumer[Block]()
	SplitBlocks(content, size, consumer)
	return consumer.Collect()
}
