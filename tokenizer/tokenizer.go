// Package tokenizer provides the public tokenization API of the Plexus ML
// framework.
//
// This package wraps the internal tokenizer implementations. Data layer
// modules consume a Tokenizer at construction time:
//
//	import "github.com/plexus-ml/plexus/tokenizer"
//
//	tok, err := tokenizer.NewTikToken("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tokens, err := tok.Encode("Hello, world!")
package tokenizer

import (
	"github.com/plexus-ml/plexus/internal/tokenizer"
)

// Tokenizer converts text to token IDs and back.
type Tokenizer = tokenizer.Tokenizer

// NewTikToken creates a tokenizer for the given OpenAI encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3),
// "r50k_base" (older GPT-3 models).
func NewTikToken(encodingName string) (Tokenizer, error) {
	return tokenizer.NewTikToken(encodingName)
}
