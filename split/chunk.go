// Package split batches classified page records into budget-bounded chunks
// and partitions the chunked corpus into skill packages, synthesizing a
// keyword router when the corpus is large enough to need one. The hard
// correctness property throughout is conservation: every input page appears
// in exactly one output package.
package split

import (
	"fmt"

	"github.com/skillpack/skillpack"
)

// Builder groups ordered page records into chunks using greedy bin packing.
type Builder struct {
	Budget int
	Unit   skillpack.SizeUnit
}

// NewBuilder creates a Builder for the configured chunk budget.
func NewBuilder(cfg skillpack.Config) *Builder {
	return &Builder{Budget: cfg.ChunkSizeBudget, Unit: cfg.ChunkSizeUnit}
}

// Build batches records into chunks. A new chunk opens when the budget would
// be exceeded or the category changes; a single page over budget becomes its
// own oversized chunk, never truncated. Ordering within a chunk preserves
// discovery order.
func (b *Builder) Build(records []*skillpack.PageRecord) []*skillpack.Chunk {
	var chunks []*skillpack.Chunk
	var current *skillpack.Chunk

	flush := func() {
		if current != nil && len(current.Pages) > 0 {
			chunks = append(chunks, current)
		}
		current = nil
	}

	for _, rec := range records {
		category := rec.Category
		if category == "" {
			category = skillpack.Uncategorized
		}
		size := rec.Size(b.Unit)

		if size > b.Budget {
			// Oversized page: its own chunk.
			flush()
			chunks = append(chunks, &skillpack.Chunk{
				ID:        chunkID(len(chunks)),
				Category:  category,
				Pages:     []*skillpack.PageRecord{rec},
				Size:      size,
				Oversized: true,
			})
			continue
		}

		if current != nil && (current.Category != category || current.Size+size > b.Budget) {
			flush()
		}
		if current == nil {
			current = &skillpack.Chunk{
				ID:       chunkID(len(chunks)),
				Category: category,
			}
		}
		current.Pages = append(current.Pages, rec)
		current.Size += size
	}
	flush()

	// Chunk IDs are positional; renumber after the final flush so gaps
	// left by oversized insertions close up.
	for i, c := range chunks {
		c.ID = chunkID(i)
	}
	return chunks
}

func chunkID(n int) string {
	return fmt.Sprintf("chunk-%04d", n)
}
