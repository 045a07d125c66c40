// Package output writes love test results and the tier table in the
// supported formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rnwolfe/lovetest/internal/love"
	"github.com/rnwolfe/lovetest/internal/ui"
	"gopkg.in/yaml.v3"
)

// Result writes r to w in the given format: text, json, yaml or md.
// width only affects the text card.
func Result(w io.Writer, format string, r love.Result, width int) error {
	switch format {
	case "text", "":
		_, err := fmt.Fprintln(w, ui.ResultCard(r, r.Score, width))
		return err
	case "json":
		return JSONTo(w, r)
	case "yaml":
		return YAMLTo(w, r)
	case "md":
		return markdown(w, resultMarkdown(r))
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// Tiers writes the tier table to w in the given format.
func Tiers(w io.Writer, format string, tiers []love.Tier) error {
	switch format {
	case "text", "":
		for _, t := range tiers {
			if _, err := fmt.Fprintf(w, "%3d–%-3d  %s\n          %s\n", t.Min, t.Max, t.Title, t.Subtitle); err != nil {
				return err
			}
		}
		return nil
	case "json":
		return JSONTo(w, tiers)
	case "yaml":
		return YAMLTo(w, tiers)
	case "md":
		return markdown(w, tiersMarkdown(tiers))
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// JSONTo writes data as indented JSON.
func JSONTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(data)
}

// YAMLTo writes data as YAML.
func YAMLTo(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

func markdown(w io.Writer, md string) error {
	mdw := ui.NewMarkdownWriter(w)
	if _, err := io.WriteString(mdw, md); err != nil {
		return err
	}
	return mdw.Flush()
}

func resultMarkdown(r love.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s + %s\n\n", r.Subject, r.Target)
	fmt.Fprintf(&b, "**%d%%** compatibility\n\n", r.Score)
	fmt.Fprintf(&b, "## %s\n\n%s\n\n", r.Title, r.Subtitle)
	fmt.Fprintf(&b, "> %s\n", r.Share)
	return b.String()
}

func tiersMarkdown(tiers []love.Tier) string {
	var b strings.Builder
	b.WriteString("| Range | Title | Subtitle |\n|---|---|---|\n")
	for _, t := range tiers {
		fmt.Fprintf(&b, "| %d–%d | %s | %s |\n", t.Min, t.Max, t.Title, t.Subtitle)
	}
	return b.String()
}
