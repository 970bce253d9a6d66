// Package report writes the markdown and JSON outputs of a Monte-Carlo
// sweep run.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Record is one aggregated (scheme, n, p) cell of a sweep.
type Record struct {
	Scheme    string  `json:"scheme"`
	N         int     `json:"n"`
	P         float64 `json:"p"`
	Trials    int     `json:"trials"`
	Rate      float64 `json:"rate"`
	Exact     float64 `json:"exact"`
	HasExact  bool    `json:"has_exact"`
	ElapsedMS int64   `json:"elapsed_ms"`
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// WriteJSON writes all records as an indented {"records": [...]} document.
func WriteJSON(path string, recs []Record) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Records []Record `json:"records"`
	}{Records: recs})
}

// WriteMarkdown writes one logical-error-rate table per scheme, lengths as
// rows and probabilities as columns, with the closed-form value alongside
// where one exists.
func WriteMarkdown(path, title string, recs []Record) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	type key struct {
		scheme string
		n      int
		p      float64
	}
	byKey := make(map[key]Record, len(recs))
	schemeSet := map[string]struct{}{}
	nSet := map[int]struct{}{}
	pSet := map[float64]struct{}{}
	for _, r := range recs {
		byKey[key{r.Scheme, r.N, r.P}] = r
		schemeSet[r.Scheme] = struct{}{}
		nSet[r.N] = struct{}{}
		pSet[r.P] = struct{}{}
	}
	schemes := make([]string, 0, len(schemeSet))
	for s := range schemeSet {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	ns := make([]int, 0, len(nSet))
	for n := range nSet {
		ns = append(ns, n)
	}
	sort.Ints(ns)
	ps := make([]float64, 0, len(pSet))
	for p := range pSet {
		ps = append(ps, p)
	}
	sort.Float64s(ps)

	fmt.Fprintf(f, "# %s\n\n", title)
	fmt.Fprintf(f, "Generated: %s\n\n", time.Now().Format(time.RFC3339))

	for _, s := range schemes {
		fmt.Fprintf(f, "## %s\n\n", strings.ToUpper(s))
		fmt.Fprintf(f, "### Logical Error Rate\n\n")
		fmt.Fprintf(f, "| n | %s |\n", joinProbHeaders(ps))
		div := make([]string, 0, 1+len(ps))
		div = append(div, "---")
		for range ps {
			div = append(div, "---")
		}
		fmt.Fprintf(f, "|%s|\n", strings.Join(div, "|"))
		for _, n := range ns {
			row := make([]string, 0, len(ps))
			present := false
			for _, p := range ps {
				r, ok := byKey[key{s, n, p}]
				if !ok {
					row = append(row, " ")
					continue
				}
				present = true
				cell := fmt.Sprintf("%.5f", r.Rate)
				if r.HasExact {
					cell += fmt.Sprintf(" (exact %.5f)", r.Exact)
				}
				row = append(row, cell)
			}
			if !present {
				continue
			}
			fmt.Fprintf(f, "| %d | %s |\n", n, strings.Join(row, " | "))
		}
		fmt.Fprintf(f, "\n")

		fmt.Fprintf(f, "### Wall Time (ms)\n\n")
		fmt.Fprintf(f, "| n | total | trials |\n")
		fmt.Fprintf(f, "|---|---:|---:|\n")
		for _, n := range ns {
			var total int64
			trials := 0
			seen := false
			for _, p := range ps {
				if r, ok := byKey[key{s, n, p}]; ok {
					total += r.ElapsedMS
					trials += r.Trials
					seen = true
				}
			}
			if !seen {
				continue
			}
			fmt.Fprintf(f, "| %d | %d | %d |\n", n, total, trials)
		}
		fmt.Fprintf(f, "\n")
	}

	fmt.Fprintf(f, "---\n\n")
	fmt.Fprintf(f, "Notes:\n\n- Error model: i.i.d. per-qubit flips with probability p (binary symmetric channel).\n- The exact column is the binomial tail for the repetition code; the 3-qubit codes are sampled only.\n- bitflip and phaseflip share one decoder pipeline; they differ only in the reading of a set bit (X vs Z).\n")
	return nil
}

func joinProbHeaders(ps []float64) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("p=%.3f", p)
	}
	return strings.Join(parts, " | ")
}
