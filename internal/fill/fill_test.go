package fill_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"wordforge/internal/fill"
	"wordforge/internal/mask"
)

func runFill(t *testing.T, masks []string, input string) []string {
	t.Helper()
	st, err := fill.New(context.Background(), masks, mask.Limits{})
	if err != nil {
		t.Fatalf("New(%q) failed: %v", masks, err)
	}
	var out bytes.Buffer
	if err := st.Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	text := strings.TrimSuffix(out.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func TestFill_SingleMask(t *testing.T) {
	got := runFill(t, []string{"?d"}, "alpha beta\n")
	if len(got) != 10 {
		t.Fatalf("expected 10 candidates, got %d", len(got))
	}
	if got[0] != "alpha0beta" || got[9] != "alpha9beta" {
		t.Errorf("expected alpha0beta..alpha9beta, got first %q last %q", got[0], got[9])
	}
}

func TestFill_OutputOrder(t *testing.T) {
	// Line is the outer loop, mask order the middle, separators inner.
	got := runFill(t, []string{"-", "?d"}, "a b\nc d\n")
	if len(got) != 22 {
		t.Fatalf("expected 22 candidates, got %d", len(got))
	}
	want := []string{"a-b", "a0b"}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("candidate %d: expected %q, got %q", i, w, got[i])
		}
	}
	if got[11] != "c-d" || got[12] != "c0d" {
		t.Errorf("second line must start after the first: got %q, %q", got[11], got[12])
	}
}

func TestFill_SkipsNonPairs(t *testing.T) {
	input := "single\na b\none two three\n\n   \nx y\n"
	got := runFill(t, []string{"-"}, input)
	want := []string{"a-b", "x-y"}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFill_DuplicateMaskRepeats(t *testing.T) {
	got := runFill(t, []string{"-", "-"}, "a b\n")
	if len(got) != 2 || got[0] != "a-b" || got[1] != "a-b" {
		t.Errorf("a repeated mask must repeat its separators: %q", got)
	}
}

func TestFill_EmptyMaskJoinsDirectly(t *testing.T) {
	got := runFill(t, []string{""}, "pass word\n")
	if len(got) != 1 || got[0] != "password" {
		t.Errorf("empty mask must concatenate the pair: %q", got)
	}
}

func TestFill_PruningMaskYieldsNothing(t *testing.T) {
	got := runFill(t, []string{"?^"}, "a b\n")
	if len(got) != 0 {
		t.Errorf("a fully pruned mask has no separators: %q", got)
	}
}

func TestFill_MalformedMaskFailsConstruction(t *testing.T) {
	_, err := fill.New(context.Background(), []string{"?d", "x{y"}, mask.Limits{})
	if err == nil {
		t.Fatal("expected error for malformed mask")
	}
	if !strings.Contains(err.Error(), "unmatched") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFill_BudgetFailsConstruction(t *testing.T) {
	_, err := fill.New(context.Background(), []string{"?d?d"}, mask.Limits{MaxBranches: 50})
	if err == nil {
		t.Fatal("expected budget error")
	}
	if !strings.Contains(err.Error(), `"?d?d"`) {
		t.Errorf("error should name the mask: %v", err)
	}
}

func TestFill_WhitespaceSplit(t *testing.T) {
	// Tabs and runs of spaces still make a two-word line.
	got := runFill(t, []string{"-"}, "a\t b\n")
	if len(got) != 1 || got[0] != "a-b" {
		t.Errorf("expected %q, got %q", "a-b", got)
	}
}
