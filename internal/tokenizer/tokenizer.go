package tokenizer

// Tokenizer converts text to token IDs and back. Data layer modules consume
// it at construction time to turn a corpus into typed tensor descriptors.
//
// Implementations must be safe for reuse: a single tokenizer may serve any
// number of modules.
type Tokenizer interface {
	// Encode converts text to token IDs.
	Encode(text string) ([]int32, error)

	// Decode converts token IDs back to text.
	Decode(tokens []int32) (string, error)

	// VocabSize returns the total vocabulary size.
	VocabSize() int

	// Name returns the tokenizer name, e.g. the encoding it wraps.
	Name() string
}
