package mask

import (
	"strings"
	"testing"
)

func TestCountDigitSlots(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 0},
		{"?d", 1},
		{"?d?d", 2},
		{"?d?^", 1},
		{"{?d{?d}-}?d", 3},
		{"{{{?d}}}", 1},
	}

	for _, tt := range tests {
		elems := mustParse(t, tt.input)
		if got := CountDigitSlots(elems); got != tt.want {
			t.Errorf("CountDigitSlots(%q): expected %d, got %d", tt.input, tt.want, got)
		}
	}
}

func TestEstimateBranches(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"", 1},
		{"abc", 1},
		{"?^", 1},
		{"?d", 10},
		{"?d?d", 100},
		{"{?d?d}-?d", 1000},
	}

	for _, tt := range tests {
		elems := mustParse(t, tt.input)
		got, err := EstimateBranches(elems)
		if err != nil {
			t.Fatalf("EstimateBranches(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("EstimateBranches(%q): expected %d, got %d", tt.input, tt.want, got)
		}
	}
}

func TestEstimateBranches_Overflow(t *testing.T) {
	// 10^19 still fits a uint64, 10^20 does not.
	fits := mustParse(t, strings.Repeat("?d", 19))
	if _, err := EstimateBranches(fits); err != nil {
		t.Fatalf("19 slots must fit a uint64: %v", err)
	}

	overflows := mustParse(t, strings.Repeat("?d", 20))
	if _, err := EstimateBranches(overflows); err == nil {
		t.Fatal("20 slots must overflow the estimate")
	}
}

func TestCheckBudget(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		limits Limits
		ok     bool
	}{
		{"within default", "?d?d?d", Limits{}, true},
		{"at default ceiling", strings.Repeat("?d", 6), Limits{}, true},
		{"above default ceiling", strings.Repeat("?d", 7), Limits{}, false},
		{"raised ceiling", strings.Repeat("?d", 7), Limits{MaxBranches: 100_000_000}, true},
		{"lowered ceiling", "?d?d", Limits{MaxBranches: 10}, false},
		{"overflow always fails", strings.Repeat("?d", 20), Limits{MaxBranches: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elems := mustParse(t, tt.input)
			err := CheckBudget(elems, tt.limits)
			if tt.ok && err != nil {
				t.Errorf("CheckBudget(%q): unexpected error: %v", tt.input, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("CheckBudget(%q): expected error, got none", tt.input)
			}
		})
	}
}
