// Package diagfmt renders parsed masks, expansions and parse failures
// for the CLI in both human-readable and JSON form.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"wordforge/internal/mask"
)

// ElementOutput is the serializable form of one parsed mask element.
type ElementOutput struct {
	Type     string          `json:"type"`
	Char     string          `json:"char,omitempty"`
	Reverse  bool            `json:"reverse,omitempty"`
	Children []ElementOutput `json:"children,omitempty"`
}

// MaskTreeOutput pairs a mask with its parsed element tree for
// multi-mask JSON documents.
type MaskTreeOutput struct {
	Mask     string          `json:"mask"`
	Elements []ElementOutput `json:"elements"`
}

// FormatElementsPretty writes the element tree of one parsed mask.
func FormatElementsPretty(w io.Writer, maskText string, elems []mask.Element) error {
	if _, err := fmt.Fprintf(w, "Mask %q\n", maskText); err != nil {
		return err
	}
	return writeElements(w, elems, "")
}

func writeElements(w io.Writer, elems []mask.Element, prefix string) error {
	for i, el := range elems {
		branch, childPrefix := "├─", prefix+"│  "
		if i == len(elems)-1 {
			branch, childPrefix = "└─", prefix+"   "
		}
		if _, err := fmt.Fprintf(w, "%s%s %s\n", prefix, branch, elementLabel(el)); err != nil {
			return err
		}
		if group, ok := el.(mask.Group); ok {
			if err := writeElements(w, group.Elems, childPrefix); err != nil {
				return err
			}
		}
	}
	return nil
}

func elementLabel(el mask.Element) string {
	switch e := el.(type) {
	case mask.Literal:
		return fmt.Sprintf("literal %q", e.Ch)
	case mask.DigitSlot:
		return "digit slot"
	case mask.BackRef:
		return "back reference"
	case mask.Group:
		if e.Reverse {
			return "group (reversed)"
		}
		return "group"
	default:
		return fmt.Sprintf("unknown (%T)", el)
	}
}

// FormatElementsJSON writes the element tree of one parsed mask as JSON.
func FormatElementsJSON(w io.Writer, elems []mask.Element) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(elementsJSON(elems))
}

// ElementsJSON converts a parsed element sequence into its serializable
// form, for callers that aggregate several masks into one document.
func ElementsJSON(elems []mask.Element) []ElementOutput {
	return elementsJSON(elems)
}

func elementsJSON(elems []mask.Element) []ElementOutput {
	var output []ElementOutput
	for _, el := range elems {
		output = append(output, elementJSON(el))
	}
	return output
}

func elementJSON(el mask.Element) ElementOutput {
	switch e := el.(type) {
	case mask.Literal:
		return ElementOutput{Type: "literal", Char: string(e.Ch)}
	case mask.DigitSlot:
		return ElementOutput{Type: "digit"}
	case mask.BackRef:
		return ElementOutput{Type: "backref"}
	case mask.Group:
		return ElementOutput{
			Type:     "group",
			Reverse:  e.Reverse,
			Children: elementsJSON(e.Elems),
		}
	default:
		return ElementOutput{Type: fmt.Sprintf("unknown (%T)", el)}
	}
}
