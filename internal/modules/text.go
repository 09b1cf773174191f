package modules

import (
	"errors"
	"fmt"

	"github.com/plexus-ml/plexus/internal/graph"
	"github.com/plexus-ml/plexus/internal/neuraltype"
	"github.com/plexus-ml/plexus/internal/tokenizer"
)

// TextDataLayer serves a tokenized corpus in fixed-length sequences. The
// corpus is encoded once at construction; the layer then exposes the token
// IDs per batch plus the per-sequence lengths.
type TextDataLayer struct {
	base
	tokens    []int32
	seqLen    int
	batchSize int
}

var _ graph.Module = (*TextDataLayer)(nil)

// NewTextDataLayer tokenizes corpus with tok and chunks it into batchSize
// sequences of seqLen tokens. It fails when the corpus does not fill at
// least one batch.
func NewTextDataLayer(corpus string, seqLen, batchSize int, tok tokenizer.Tokenizer, opts ...Option) (*TextDataLayer, error) {
	if seqLen <= 0 || batchSize <= 0 {
		return nil, fmt.Errorf("modules: text data layer needs positive seqLen and batchSize, got %d and %d", seqLen, batchSize)
	}
	tokens, err := tok.Encode(corpus)
	if err != nil {
		return nil, fmt.Errorf("modules: tokenizing corpus with %s: %w", tok.Name(), err)
	}
	if len(tokens) < seqLen*batchSize {
		return nil, errors.New("modules: corpus too small for one batch")
	}

	o := resolve("textdatalayer", opts)
	return &TextDataLayer{
		base: base{
			name: o.name,
			mode: o.mode,
			out: graph.Ports{
				{Name: "token_ids", Type: neuraltype.New(neuraltype.TokenIndex,
					neuraltype.Axis{Kind: neuraltype.AxisBatch, Size: batchSize},
					neuraltype.Axis{Kind: neuraltype.AxisTime, Size: seqLen},
				)},
				{Name: "length", Type: neuraltype.New(neuraltype.Length,
					neuraltype.Axis{Kind: neuraltype.AxisBatch, Size: batchSize},
				)},
			},
		},
		tokens:    tokens,
		seqLen:    seqLen,
		batchSize: batchSize,
	}, nil
}

// Tokens returns the number of tokens in the encoded corpus.
func (m *TextDataLayer) Tokens() int { return len(m.tokens) }

// Batches returns the number of full batches the corpus yields.
func (m *TextDataLayer) Batches() int { return len(m.tokens) / (m.seqLen * m.batchSize) }
