// Package wordlist loads candidate vocabularies from plain-text word files
// or from the shared BigQuery word table.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read collects words from r, one per line, lowercased and trimmed. Blank
// lines and '#' comments are skipped, and words outside
// [minLength, maxLength] are dropped; a maxLength of 0 means unbounded.
func Read(ctx context.Context, r io.Reader, minLength, maxLength int) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if len(word) < minLength {
			continue
		}
		if maxLength > 0 && len(word) > maxLength {
			continue
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("word %s contains non-lowercase letter %q", word, r)
			}
		}
		words = append(words, word)
	}

	return words, scanner.Err()
}

// Load reads a word file from disk.
func Load(ctx context.Context, path string, minLength, maxLength int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(ctx, f, minLength, maxLength)
}
