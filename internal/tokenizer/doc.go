// Package tokenizer provides text tokenization for data layer modules.
//
// The Tokenizer interface covers what graph construction needs: encoding a
// corpus into token IDs at module construction time and decoding IDs back
// for inspection. The tiktoken implementation wraps pkoukk/tiktoken-go:
//
//	tok, err := tokenizer.NewTikToken("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tokens, err := tok.Encode("Hello, world!")
package tokenizer
