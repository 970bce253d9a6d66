// qec_eval sweeps the Monte-Carlo logical error rate of the repetition,
// bit-flip and phase-flip codes over a grid of code lengths and physical
// error probabilities, and writes markdown and JSON reports.
package main

import (
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"strings"
	"time"

	"github.com/qeclab/qeclab/internal/report"
	"github.com/qeclab/qeclab/qec"
)

type scheme string

const (
	schemeRepetition scheme = "repetition"
	schemeBitFlip    scheme = "bitflip"
	schemePhaseFlip  scheme = "phaseflip"
)

func parseLengths(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(p, "%d", &n); err != nil {
			return nil, fmt.Errorf("bad length %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseProbs(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		var f float64
		if _, err := fmt.Sscanf(p, "%f", &f); err != nil {
			return nil, fmt.Errorf("bad probability %q: %w", p, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func main() {
	var (
		trials  = flag.Int("trials", 100000, "Monte-Carlo trials per (scheme,n,p)")
		nStr    = flag.String("n", "1,3,5,7,9", "comma-separated repetition code lengths (odd)")
		pStr    = flag.String("p", "0.01,0.05,0.1,0.2,0.3", "comma-separated flip probabilities")
		which   = flag.String("scheme", "all", "which scheme to run: repetition|bitflip|phaseflip|all")
		batches = flag.Int("batches", 1, "parallel batches for the repetition sweep (1 = serial)")
		seed    = flag.Int64("seed", 42, "random seed")
		outPath = flag.String("out", "docs/reports/qec_eval_report.md", "output markdown report path")
	)
	flag.Parse()

	ns, err := parseLengths(*nStr)
	if err != nil {
		fatalf("%v", err)
	}
	ps, err := parseProbs(*pStr)
	if err != nil {
		fatalf("%v", err)
	}
	for _, n := range ns {
		if n <= 0 {
			fatalf("invalid code length %d", n)
		}
		if n%2 == 0 {
			fmt.Fprintf(os.Stderr, "warning: even length %d ties are decoded as 0\n", n)
		}
	}
	for _, p := range ps {
		if p < 0 || p > 1 {
			fatalf("invalid probability %.4f", p)
		}
	}

	runRep := *which == "all" || *which == string(schemeRepetition)
	runBit := *which == "all" || *which == string(schemeBitFlip)
	runPhase := *which == "all" || *which == string(schemePhaseFlip)
	if !runRep && !runBit && !runPhase {
		fatalf("unknown scheme %q", *which)
	}

	rng := mrand.New(mrand.NewSource(*seed))
	recs := make([]report.Record, 0, len(ns)*len(ps)*3)

	if runRep {
		for _, n := range ns {
			for _, p := range ps {
				start := time.Now()
				var rate float64
				var err error
				if *batches > 1 {
					rate, err = qec.RepetitionMCErrorParallel(n, p, *trials, *batches, *seed)
				} else {
					rate, err = qec.RepetitionMCError(n, p, *trials, rng)
				}
				if err != nil {
					fatalf("repetition n=%d p=%.4f: %v", n, p, err)
				}
				exact, err := qec.RepetitionExactError(n, p)
				if err != nil {
					fatalf("exact n=%d p=%.4f: %v", n, p, err)
				}
				recs = append(recs, report.Record{
					Scheme:    string(schemeRepetition),
					N:         n,
					P:         p,
					Trials:    *trials,
					Rate:      rate,
					Exact:     exact,
					HasExact:  true,
					ElapsedMS: time.Since(start).Milliseconds(),
				})
				fmt.Printf("repetition n=%d p=%.4f rate=%.5f exact=%.5f\n", n, p, rate, exact)
			}
		}
	}

	for _, sch := range []scheme{schemeBitFlip, schemePhaseFlip} {
		if (sch == schemeBitFlip && !runBit) || (sch == schemePhaseFlip && !runPhase) {
			continue
		}
		estimate := qec.BitFlipMCError
		if sch == schemePhaseFlip {
			estimate = qec.PhaseFlipMCError
		}
		for _, p := range ps {
			start := time.Now()
			rate, err := estimate(p, *trials, rng)
			if err != nil {
				fatalf("%s p=%.4f: %v", sch, p, err)
			}
			recs = append(recs, report.Record{
				Scheme:    string(sch),
				N:         3,
				P:         p,
				Trials:    *trials,
				Rate:      rate,
				ElapsedMS: time.Since(start).Milliseconds(),
			})
			fmt.Printf("%s p=%.4f rate=%.5f\n", sch, p, rate)
		}
	}

	ts := time.Now().Format("20060102_150405")
	mdPath := strings.TrimSuffix(*outPath, ".md") + "_" + ts + ".md"
	jsonPath := strings.TrimSuffix(*outPath, ".md") + "_" + ts + ".json"
	if err := report.WriteJSON(jsonPath, recs); err != nil {
		fatalf("write json: %v", err)
	}
	if err := report.WriteMarkdown(mdPath, "QEC Logical Error Rate Sweep", recs); err != nil {
		fatalf("write md: %v", err)
	}
	fmt.Printf("Report written: %s\nJSON: %s\n", mdPath, jsonPath)
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}
