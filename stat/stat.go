package stat

import (
	sent "github.com/revelaction/relex/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	// Skipped counts sentences dropped for failing validation.
	Skipped int

	// Invalid counts sentences excluded as ambiguous by an extractor.
	Invalid int

	// Emitted counts the patterns counted.
	Emitted int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(s sent.Sentence) {
	h.stats.NumSentences++
	h.stats.NumTokens += len(s.Tokens)
	h.stats.TokensPerSentenceDis[len(s.Tokens)]++
	h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
}

func (h *Handler) Skip() {
	h.stats.Skipped++
}

func (h *Handler) Invalid() {
	h.stats.Invalid++
}

func (h *Handler) Emit(n int) {
	h.stats.Emitted += n
}

// Merge adds the stats of o.
func (h *Handler) Merge(o Stats) {
	h.stats.NumSentences += o.NumSentences
	h.stats.NumTokens += o.NumTokens
	for k, v := range o.TokensPerSentenceDis {
		h.stats.TokensPerSentenceDis[k] += v
	}
	h.stats.Skipped += o.Skipped
	h.stats.Invalid += o.Invalid
	h.stats.Emitted += o.Emitted

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}
