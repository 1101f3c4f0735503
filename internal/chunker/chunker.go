// Package chunker splits extracted text into overlapping word windows for
// embedding and retrieval.
package chunker

import "strings"

// DefaultTargetSize is the default approximate token budget per chunk.
const DefaultTargetSize = 500

// DefaultOverlap is the default number of words carried between chunks.
const DefaultOverlap = 50

// Chunker splits text into overlapping chunks. Words are the split unit and
// the cost of a word is approximated as len(word)/4, a crude proxy for
// subword-tokenizer cost.
type Chunker struct {
	targetSize int
	overlap    int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithTargetSize sets the approximate token budget per chunk.
func WithTargetSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.targetSize = size
		}
	}
}

// WithOverlap sets the number of words carried between adjacent chunks.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		targetSize: DefaultTargetSize,
		overlap:    DefaultOverlap,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Split splits text into overlapping chunks. It is pure and deterministic:
// identical inputs always yield an identical output sequence. Empty input
// yields no chunks.
//
// The size bound is a soft target: a chunk is only closed once it has
// content, so a single word whose cost alone exceeds the target still lands
// in a chunk of its own rather than being truncated.
func (c *Chunker) Split(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var current []string
	currentCost := 0

	for _, word := range words {
		cost := wordCost(word)

		if currentCost+cost > c.targetSize && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))

			// Seed the next chunk with the tail of the one just closed.
			carry := current
			if len(carry) > c.overlap {
				carry = carry[len(carry)-c.overlap:]
			}
			next := make([]string, 0, len(carry)+1)
			next = append(next, carry...)
			next = append(next, word)

			current = next
			currentCost = 0
			for _, w := range current {
				currentCost += wordCost(w)
			}
			continue
		}

		current = append(current, word)
		currentCost += cost
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}

// TargetSize returns the configured token budget per chunk.
func (c *Chunker) TargetSize() int {
	return c.targetSize
}

// Overlap returns the configured word overlap.
func (c *Chunker) Overlap() int {
	return c.overlap
}

// wordCost approximates the token cost of a word (~4 characters per token).
func wordCost(word string) int {
	return len(word) / 4
}
