package main

import (
	"fmt"
	"os"
	"strings"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

// resolveTUI decides whether a chained run may draw the progress
// display. The TUI needs stdout for drawing and stdin for key input, so
// it is only possible when the candidate stream reads from a file and
// does not write to stdout. Asking for it anyway is an error; in auto
// mode it simply stays off.
func resolveTUI(mode uiMode, inputIsFile, stdoutIsData bool) (bool, error) {
	switch mode {
	case uiModeOff:
		return false, nil
	case uiModeOn:
		if !inputIsFile {
			return false, fmt.Errorf("--ui on needs --input: the progress display owns the terminal's stdin")
		}
		if stdoutIsData {
			return false, fmt.Errorf("--ui on needs --output or --stats: candidates would stream through the progress display")
		}
		return true, nil
	default:
		return inputIsFile && !stdoutIsData && isTerminal(os.Stdout), nil
	}
}
