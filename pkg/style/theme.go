// Package style bridges the document's cosmetic settings and the go-theme
// renderer configuration, so host applications can hand the form's colors to
// any theme-aware renderer.
package style

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/document"
)

// ThemeName identifies the synthesised theme derived from a form's style.
const ThemeName = "formbuilder"

// Manifest converts a form style into a go-theme manifest whose tokens carry
// the style values.
func Manifest(s document.Style) *theme.Manifest {
	return &theme.Manifest{
		Name:    ThemeName,
		Version: "1.0.0",
		Tokens:  tokens(s),
	}
}

// RendererConfig builds the renderer-facing theme configuration: tokens plus
// CSS custom properties derived from them.
func RendererConfig(s document.Style) *theme.RendererConfig {
	t := tokens(s)
	return &theme.RendererConfig{
		Theme:   ThemeName,
		Tokens:  t,
		CSSVars: cssVars(t),
	}
}

// CSSVarsStyle renders the style's tokens as an inline CSS declaration list,
// e.g. for a style attribute on the form's root element.
func CSSVarsStyle(s document.Style) string {
	vars := cssVars(tokens(s))
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(vars[name])
	}
	return b.String()
}

func tokens(s document.Style) map[string]string {
	out := make(map[string]string, 3)
	if s.PrimaryColor != "" {
		out["primary"] = s.PrimaryColor
	}
	if s.BackgroundColor != "" {
		out["background"] = s.BackgroundColor
	}
	if s.BorderRadius != "" {
		out["radius"] = s.BorderRadius
	}
	return out
}

func cssVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for name, value := range tokens {
		out["--"+name] = value
	}
	return out
}
