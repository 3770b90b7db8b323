package diagfmt

import (
	"encoding/json"
	"io"
)

// ExpansionOutput is the serializable result of expanding one mask.
// Candidates is omitted in count-only mode.
type ExpansionOutput struct {
	Mask       string   `json:"mask"`
	Estimate   uint64   `json:"estimate"`
	Candidates []string `json:"candidates,omitempty"`
}

// FormatExpansionsJSON writes the expansion results of all masks as one
// JSON document.
func FormatExpansionsJSON(w io.Writer, expansions []ExpansionOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(expansions)
}
