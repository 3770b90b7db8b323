package mask_test

import (
	"strings"
	"testing"

	"wordforge/internal/mask"
)

// expand expands a mask that is expected to be well formed.
func expand(t *testing.T, input string) []string {
	t.Helper()
	seps, err := mask.Expand(input, mask.Options{})
	if err != nil {
		t.Fatalf("Expand(%q) failed: %v", input, err)
	}
	return seps
}

// expectExpansion checks the full output sequence, order included.
func expectExpansion(t *testing.T, input string, want []string) {
	t.Helper()
	got := expand(t, input)
	if len(got) != len(want) {
		t.Fatalf("Expand(%q): expected %d results, got %d\nGot: %v", input, len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expand(%q): result %d is %q, expected %q", input, i, got[i], want[i])
		}
	}
}

// ====== Literals and digit slots ======

func TestExpand_Literals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain literals", "abc", []string{"abc"}},
		{"empty mask", "", []string{""}},
		{"dash literal", "a-b", []string{"a-b"}},
		{"unmatched close brace", "}", []string{"}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectExpansion(t, tt.input, tt.want)
		})
	}
}

func TestExpand_DigitSlot(t *testing.T) {
	want := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	expectExpansion(t, "?d", want)
}

func TestExpand_DigitSlotSurrounded(t *testing.T) {
	got := expand(t, "a?db")
	if len(got) != 10 {
		t.Fatalf("expected 10 results, got %d", len(got))
	}
	if got[0] != "a0b" || got[9] != "a9b" {
		t.Errorf("expected a0b..a9b ascending, got first %q last %q", got[0], got[9])
	}
}

func TestExpand_TwoSlotsOrder(t *testing.T) {
	got := expand(t, "?d?d")
	if len(got) != 100 {
		t.Fatalf("expected 100 results, got %d", len(got))
	}
	// Left slot is the outer loop, right slot the inner one.
	for i, sep := range got {
		want := string(rune('0'+i/10)) + string(rune('0'+i%10))
		if sep != want {
			t.Fatalf("result %d is %q, expected %q", i, sep, want)
		}
	}
}

// ====== Back-references ======

func TestExpand_BackRefSymbols(t *testing.T) {
	// One digit followed by its shift-row symbol, per US keyboard.
	want := []string{"0)", "1!", "2@", "3#", "4$", "5%", "6^", "7&", "8*", "9("}
	expectExpansion(t, "?d?^", want)
}

func TestExpand_BackRefEarliestDigit(t *testing.T) {
	got := expand(t, "?d?d?^")
	if len(got) != 100 {
		t.Fatalf("expected 100 results, got %d", len(got))
	}
	// The reference resolves to the first digit, not the nearest.
	if got[0] != "00)" {
		t.Errorf("first result is %q, expected %q", got[0], "00)")
	}
	if got[99] != "99(" {
		t.Errorf("last result is %q, expected %q", got[99], "99(")
	}
	if got[12] != "12!" {
		t.Errorf("result 12 is %q, expected %q", got[12], "12!")
	}
}

func TestExpand_BackRefCursorAdvances(t *testing.T) {
	got := expand(t, "?d?d?^?^")
	if len(got) != 100 {
		t.Fatalf("expected 100 results, got %d", len(got))
	}
	// First reference takes the first digit, second the second.
	if got[12] != "12!@" {
		t.Errorf("result 12 is %q, expected %q", got[12], "12!@")
	}
	if got[0] != "00))" {
		t.Errorf("first result is %q, expected %q", got[0], "00))")
	}
}

func TestExpand_BackRefPrunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"reference with no digits", "?^"},
		{"reference before slot", "?^?d"},
		{"more references than digits", "?d?^?^"},
		{"branch dies inside reversed group", "?d{?^?^}-"},
		{"literal only with reference", "ab?^cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expand(t, tt.input)
			if len(got) != 0 {
				t.Errorf("Expand(%q): expected no results, got %v", tt.input, got)
			}
		})
	}
}

// ====== Groups ======

func TestExpand_GroupTransparent(t *testing.T) {
	// A group without reversal changes nothing.
	expectExpansion(t, "{ab}", []string{"ab"})
	expectExpansion(t, "a{b}c", []string{"abc"})
	expectExpansion(t, "{?d?^}", expand(t, "?d?^"))
}

func TestExpand_GroupReversal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"literal reversal", "{AB}-", []string{"BA"}},
		{"reversal is rune wise", "{aé}-", []string{"éa"}},
		{"empty group", "{}", []string{""}},
		{"empty reversed group", "{}-", []string{""}},
		{"nested reversal", "{a{bc}-d}-", []string{"dbca"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectExpansion(t, tt.input, tt.want)
		})
	}
}

func TestExpand_GroupReversalOfDigits(t *testing.T) {
	got := expand(t, "{?d?d}-")
	if len(got) != 100 {
		t.Fatalf("expected 100 results, got %d", len(got))
	}
	// Branch order stays the worklist order; only the text is reversed.
	if got[0] != "00" || got[1] != "10" || got[99] != "99" {
		t.Errorf("unexpected order: first %q second %q last %q", got[0], got[1], got[99])
	}
	if got[12] != "21" {
		t.Errorf("result 12 is %q, expected %q", got[12], "21")
	}
}

func TestExpand_GroupReversalWithReference(t *testing.T) {
	// The reference resolves before the group text flips.
	want := []string{")0", "!1", "@2", "#3", "$4", "%5", "^6", "&7", "*8", "(9"}
	expectExpansion(t, "{?d?^}-", want)
}

func TestExpand_GroupedReferences(t *testing.T) {
	plain := expand(t, "?d?d{?^?^}")
	if len(plain) != 100 {
		t.Fatalf("expected 100 results, got %d", len(plain))
	}
	if plain[12] != "12!@" {
		t.Errorf("result 12 is %q, expected %q", plain[12], "12!@")
	}

	flipped := expand(t, "?d?d{?^?^}-")
	if len(flipped) != 100 {
		t.Fatalf("expected 100 results, got %d", len(flipped))
	}
	// Same-symbol pairs look unchanged; mixed pairs show the flip.
	if flipped[0] != "00))" || flipped[99] != "99((" {
		t.Errorf("unexpected ends: first %q last %q", flipped[0], flipped[99])
	}
	if flipped[12] != "12@!" {
		t.Errorf("result 12 is %q, expected %q", flipped[12], "12@!")
	}
}

func TestExpand_GroupStatePropagates(t *testing.T) {
	// Digits produced inside a group stay visible to later references,
	// reversed or not.
	want := []string{"0)", "1!", "2@", "3#", "4$", "5%", "6^", "7&", "8*", "9("}
	expectExpansion(t, "{?d}?^", want)
	expectExpansion(t, "{?d}-?^", want)
}

func TestExpand_ReferenceInsideGroup(t *testing.T) {
	got := expand(t, "?d{x?^}-")
	if len(got) != 10 {
		t.Fatalf("expected 10 results, got %d", len(got))
	}
	// Group text is ")x" reversed from "x)" for digit 0.
	if got[0] != "0)x" {
		t.Errorf("first result is %q, expected %q", got[0], "0)x")
	}
}

// ====== Determinism and purity ======

func TestExpand_Deterministic(t *testing.T) {
	const input = "{?d?^}-?d"
	first := expand(t, input)
	for run := 0; run < 3; run++ {
		again := expand(t, input)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed from %d to %d", run, len(first), len(again))
		}
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d: result %d changed from %q to %q", run, i, first[i], again[i])
			}
		}
	}
}

func TestExpand_CountIsTenPerSlot(t *testing.T) {
	// Without back-references nothing prunes, so the output count is
	// exactly ten per digit slot.
	tests := []struct {
		input string
		want  int
	}{
		{"abc", 1},
		{"?d", 10},
		{"?d?d", 100},
		{"a?db?dc", 100},
		{"{?d}-{?d}", 100},
		{"{?d{?d}-}?d", 1000},
		{"?d?d?d?d", 10000},
	}

	for _, tt := range tests {
		got := expand(t, tt.input)
		if len(got) != tt.want {
			t.Errorf("Expand(%q): expected %d results, got %d", tt.input, tt.want, len(got))
		}
	}
}

func TestExpand_SiblingIsolation(t *testing.T) {
	// Sibling branches of one slot must not leak digits into each other.
	// With shared history, later branches would resolve wrong symbols.
	got := expand(t, "?d?d?^?^")
	for i, sep := range got {
		hi := rune(sep[0])
		lo := rune(sep[1])
		wantFirst := shiftFor(hi)
		wantSecond := shiftFor(lo)
		if rune(sep[2]) != wantFirst || rune(sep[3]) != wantSecond {
			t.Fatalf("result %d %q: references do not match own digits", i, sep)
		}
	}
}

func shiftFor(digit rune) rune {
	const row = `)!@#$%^&*(`
	return rune(row[digit-'0'])
}

func TestExpand_MalformedMask(t *testing.T) {
	_, err := mask.Expand("ab{cd", mask.Options{})
	if err == nil {
		t.Fatal("expected error for unmatched '{'")
	}
	if !strings.Contains(err.Error(), "unmatched") {
		t.Errorf("unexpected error text: %v", err)
	}
}
