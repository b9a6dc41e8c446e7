// Package doc reads parsed documents stored as JSON: an object whose
// "tokens" field holds one token array per sentence.
package doc

import (
	"encoding/json"
	"fmt"
	"os"

	sent "github.com/revelaction/relex/sentence"
)

// Ext is the file extension of JSON documents.
const Ext = ".json"

// Doc is a parsed document.
type Doc struct {
	Title  string         `json:"title,omitempty"`
	Tokens [][]sent.Token `json:"tokens"`
}

// Read reads the Doc JSON at path.
func Read(path string) (Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var d Doc
	if err := json.Unmarshal(f, &d); err != nil {
		return Doc{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// ReadFile streams the sentences of the document at path to fn, numbered
// from 0. An error returned by fn stops the iteration and is returned.
func ReadFile(path string, fn func(sent.Sentence) error) error {
	d, err := Read(path)
	if err != nil {
		return err
	}

	for i, tokens := range d.Tokens {
		if err := fn(sent.Sentence{Id: i, Tokens: tokens}); err != nil {
			return err
		}
	}

	return nil
}
