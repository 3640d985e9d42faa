package domain

// FormatRequest asks for one date to be rendered with a pattern.
// An empty Date is the absence marker; an empty Pattern selects the default.
type FormatRequest struct {
	Date    string `json:"date"`
	Pattern string `json:"pattern"`
}

// FormatResult is the canonical shape returned for a single format call.
type FormatResult struct {
	Date      string `json:"date"`
	Pattern   string `json:"pattern"`
	Formatted string `json:"formatted"`
	Error     string `json:"error,omitempty"`
}

// BatchRequest carries several format requests in one call.
type BatchRequest struct {
	Items []FormatRequest `json:"items"`
}

// BatchResponse is the payload returned for a batch format call.
type BatchResponse struct {
	Results []FormatResult `json:"results"`
}

// Segment is one scanned piece of a pattern.
type Segment struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// TokensResponse is the payload returned by /tokens.
type TokensResponse struct {
	Pattern  string    `json:"pattern"`
	Segments []Segment `json:"segments"`
	Known    []string  `json:"known"`
}
