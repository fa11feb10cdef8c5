package main

import (
	"fmt"
	"os"
)

// uiMode controls whether directory runs show the interactive progress view.
type uiMode uint8

const (
	uiAuto uiMode = iota
	uiOn
	uiOff
)

func readUIMode(value string) (uiMode, error) {
	switch value {
	case "auto":
		return uiAuto, nil
	case "on":
		return uiOn, nil
	case "off":
		return uiOff, nil
	default:
		return uiAuto, fmt.Errorf("invalid --ui value: %q (want auto, on, or off)", value)
	}
}

// shouldUseTUI resolves the mode against the terminal: auto enables the
// progress view only when stdout is a TTY.
func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiOn:
		return true
	case uiOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
