package tui

import (
	theme "github.com/goliatone/go-theme"
)

// Theme captures optional formatting prefixes the session applies when
// printing messages. Keep minimal to avoid coupling session logic to ANSI
// specifics.
type Theme struct {
	PromptPrefix  string
	InfoPrefix    string
	SuccessPrefix string
	ErrorPrefix   string
}

// DefaultTheme returns the prefixes used when no theme is configured.
func DefaultTheme() Theme {
	return Theme{
		InfoPrefix:    "-",
		SuccessPrefix: "ok",
		ErrorPrefix:   "!!",
	}
}

// Token keys a theme manifest can set to style session output. Variant
// tokens override the base manifest tokens for the resolved variant.
const (
	tokenPromptPrefix  = "tui.prompt"
	tokenInfoPrefix    = "tui.info"
	tokenSuccessPrefix = "tui.success"
	tokenErrorPrefix   = "tui.error"
)

// ThemeFromSelection derives prompt prefixes from a resolved theme
// selection. Unset tokens keep their defaults.
func ThemeFromSelection(sel *theme.Selection) Theme {
	t := DefaultTheme()
	if sel == nil || sel.Manifest == nil {
		return t
	}

	tokens := make(map[string]string, len(sel.Manifest.Tokens))
	for key, value := range sel.Manifest.Tokens {
		tokens[key] = value
	}
	if sel.Variant != "" {
		if variant, ok := sel.Manifest.Variants[sel.Variant]; ok {
			for key, value := range variant.Tokens {
				tokens[key] = value
			}
		}
	}

	if v := tokens[tokenPromptPrefix]; v != "" {
		t.PromptPrefix = v
	}
	if v := tokens[tokenInfoPrefix]; v != "" {
		t.InfoPrefix = v
	}
	if v := tokens[tokenSuccessPrefix]; v != "" {
		t.SuccessPrefix = v
	}
	if v := tokens[tokenErrorPrefix]; v != "" {
		t.ErrorPrefix = v
	}
	return t
}
