package query

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/relex/render"
	"github.com/revelaction/relex/storage"
)

const (
	completionThreshold = 2

	// wildcard matches any field in a positional query
	wildcard = "_"

	quit = "quit"
)

// Handler answers lemma queries over the rows of one frequency table.
//
// A query of one word returns the rows having the word in any field. A
// query of several words is positional: word i must equal field i, "_"
// matches anything.
type Handler struct {
	Rows     []storage.Row
	Renderer render.Renderer
	Limit    int
	Out      io.Writer

	lemmas []string
}

func NewHandler(rows []storage.Row, r render.Renderer, limit int, out io.Writer) *Handler {
	seen := map[string]bool{}
	var lemmas []string
	for _, row := range rows {
		for _, f := range row.Fields {
			if !seen[f] {
				seen[f] = true
				lemmas = append(lemmas, f)
			}
		}
	}
	sort.Strings(lemmas)

	return &Handler{
		Rows:     rows,
		Renderer: r,
		Limit:    limit,
		Out:      out,
		lemmas:   lemmas,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintf(h.Out, "🔑 %d patterns, %d lemmas. Type lemmas, _ as wildcard, 🔧 quit\n", len(h.Rows), len(h.lemmas))

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("relex query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		in = strings.TrimSpace(in)
		if in == quit {
			return nil
		}
		if in == "" {
			continue
		}

		history = append(history, in)

		if err := h.Renderer.Render(h.Lookup(in)); err != nil {
			return err
		}
	}
}

// Lookup returns the rows matching the query, highest count first. Rows
// with equal counts keep their table order.
func (h *Handler) Lookup(in string) []storage.Row {
	words := strings.Fields(in)
	if len(words) == 0 {
		return nil
	}

	var res []storage.Row
	for _, row := range h.Rows {
		if matches(row, words) {
			res = append(res, row)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Count > res[j].Count
	})

	if h.Limit > 0 && len(res) > h.Limit {
		res = res[:h.Limit]
	}

	return res
}

func matches(row storage.Row, words []string) bool {
	if len(words) == 1 {
		for _, f := range row.Fields {
			if f == words[0] {
				return true
			}
		}
		return false
	}

	if len(words) > len(row.Fields) {
		return false
	}

	for i, w := range words {
		if w != wildcard && w != row.Fields[i] {
			return false
		}
	}
	return true
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	word := in.GetWordBeforeCursor()
	return h.suggest(word)
}

// suggest returns the lemmas starting with word.
func (h *Handler) suggest(word string) []prompt.Suggest {
	s := []prompt.Suggest{}
	if len(word) < completionThreshold {
		return s
	}

	i := sort.SearchStrings(h.lemmas, word)
	for ; i < len(h.lemmas) && strings.HasPrefix(h.lemmas[i], word); i++ {
		s = append(s, prompt.Suggest{Text: h.lemmas[i]})
	}

	return s
}
