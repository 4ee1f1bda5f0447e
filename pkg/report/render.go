package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Output formats supported by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Render writes the report in the named format.
func Render(w io.Writer, r *Report, format string) error {
	switch format {
	case FormatJSON:
		return RenderJSON(w, r)
	case FormatText, "":
		return RenderText(w, r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// RenderText writes one line per finding followed by a summary footer.
func RenderText(w io.Writer, r *Report) error {
	for _, f := range r.Findings {
		location := f.Type
		if f.Member != "" {
			location += "." + f.Member
		}
		if _, err := fmt.Fprintf(w, "%-7s %-3s %-40s %s\n",
			f.Severity, f.Principle, location, f.Message); err != nil {
			return err
		}
	}

	if r.Clean() {
		_, err := fmt.Fprintf(w, "no findings (%d types, %d inheritance edges, %d dependency edges)\n",
			r.Summary.Graph.Types, r.Summary.Graph.InheritanceEdges, r.Summary.Graph.DependencyEdges)
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%d finding(s)", r.Summary.Total); err != nil {
		return err
	}
	for _, p := range sortedKeys(r.Summary.ByPrinciple) {
		if _, err := fmt.Fprintf(w, "  %s=%d", p, r.Summary.ByPrinciple[p]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// RenderJSON writes the report as indented JSON with a trailing newline.
func RenderJSON(w io.Writer, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
