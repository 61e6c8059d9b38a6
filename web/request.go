package web

// SentenceRequest carries a list of whitespace-tokenized words.
type SentenceRequest struct {
	Words []string `json:"words"`
}

// AnalyzeRequest carries words to analyze out of context.
type AnalyzeRequest struct {
	Words []string `json:"words"`
}

// TokenizeRequest carries words to tokenize morphologically.
type TokenizeRequest struct {
	Words  []string `json:"words"`
	Scheme string   `json:"scheme"`
	Split  bool     `json:"split"`
}

// TranslitRequest carries text to transliterate with a builtin scheme.
type TranslitRequest struct {
	Text   string `json:"text"`
	Scheme string `json:"scheme"`
	Marker string `json:"marker"`
	Strip  bool   `json:"strip"`
	Ignore bool   `json:"ignore"`
}
