// qeclab-server exposes the error-correction engine over a small HTTP JSON
// API so an embedding UI can drive it, plus Prometheus metrics.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	mrand "math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/qeclab/qeclab/qec"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qeclab_requests_total",
		Help: "API requests by endpoint and status.",
	}, []string{"endpoint", "status"})
	trialsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qeclab_trials_simulated_total",
		Help: "Monte-Carlo trials simulated across all estimate requests.",
	})
)

type server struct {
	log       *zap.Logger
	code      qec.ThreeQubitBitFlip
	maxTrials int
}

type apiError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func errorKind(err error) (string, int) {
	switch {
	case errors.Is(err, qec.ErrPauliLength):
		return "PauliLengthError", http.StatusBadRequest
	case errors.Is(err, qec.ErrShapeMismatch):
		return "ShapeMismatch", http.StatusBadRequest
	case errors.Is(err, qec.ErrInvalidParameter):
		return "InvalidParameter", http.StatusBadRequest
	default:
		return "Internal", http.StatusInternalServerError
	}
}

func (s *server) writeJSON(w http.ResponseWriter, endpoint string, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response", zap.String("endpoint", endpoint), zap.Error(err))
	}
	requestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", status)).Inc()
}

func (s *server) writeError(w http.ResponseWriter, endpoint string, err error) {
	kind, status := errorKind(err)
	s.log.Info("request failed",
		zap.String("endpoint", endpoint),
		zap.String("kind", kind),
		zap.Error(err))
	s.writeJSON(w, endpoint, status, apiError{Kind: kind, Message: err.Error()})
}

// bitsToInts widens a bit vector for JSON output; raw []byte would be
// base64-encoded by encoding/json.
func bitsToInts(bits []byte) []int {
	out := make([]int, len(bits))
	for i, b := range bits {
		out[i] = int(b)
	}
	return out
}

func intsToBits(ints []int) ([]byte, error) {
	out := make([]byte, len(ints))
	for i, v := range ints {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: bit %d at position %d", qec.ErrInvalidParameter, v, i)
		}
		out[i] = byte(v)
	}
	return out, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *server) handleCommutes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		P string `json:"p"`
		Q string `json:"q"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	commutes, err := qec.Commutes(req.P, req.Q)
	if err != nil {
		s.writeError(w, "commutes", err)
		return
	}
	s.writeJSON(w, "commutes", http.StatusOK, struct {
		Commutes bool `json:"commutes"`
	}{commutes})
}

func (s *server) handleSyndrome(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Error      string   `json:"error"`
		Generators []string `json:"generators"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	syn, err := qec.SyndromeFromPauli(req.Error, req.Generators)
	if err != nil {
		s.writeError(w, "syndrome", err)
		return
	}
	s.writeJSON(w, "syndrome", http.StatusOK, struct {
		Syndrome []int `json:"syndrome"`
	}{bitsToInts(syn)})
}

func (s *server) handleShot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Error []int `json:"error"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	e, err := intsToBits(req.Error)
	if err != nil {
		s.writeError(w, "shot", err)
		return
	}
	shot, err := s.code.RunShot(e)
	if err != nil {
		s.writeError(w, "shot", err)
		return
	}
	s.writeJSON(w, "shot", http.StatusOK, struct {
		Error      []int `json:"error"`
		Syndrome   []int `json:"syndrome"`
		Correction []int `json:"correction"`
		Residual   []int `json:"residual"`
		Decoded    int   `json:"decoded"`
	}{
		Error:      bitsToInts(shot.Error),
		Syndrome:   bitsToInts(shot.Syndrome),
		Correction: bitsToInts(shot.Correction),
		Residual:   bitsToInts(shot.Residual),
		Decoded:    int(shot.Decoded),
	})
}

func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Scheme string  `json:"scheme"`
		N      int     `json:"n"`
		P      float64 `json:"p"`
		Trials int     `json:"trials"`
		Seed   int64   `json:"seed"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Trials > s.maxTrials {
		s.writeError(w, "estimate",
			fmt.Errorf("%w: trials %d exceeds server cap %d", qec.ErrInvalidParameter, req.Trials, s.maxTrials))
		return
	}
	rng := mrand.New(mrand.NewSource(req.Seed))

	var (
		rate     float64
		exact    float64
		hasExact bool
		err      error
	)
	start := time.Now()
	switch req.Scheme {
	case "repetition":
		rate, err = qec.RepetitionMCError(req.N, req.P, req.Trials, rng)
		if err == nil {
			exact, err = qec.RepetitionExactError(req.N, req.P)
			hasExact = err == nil
		}
	case "bitflip":
		rate, err = qec.BitFlipMCError(req.P, req.Trials, rng)
	case "phaseflip":
		rate, err = qec.PhaseFlipMCError(req.P, req.Trials, rng)
	default:
		err = fmt.Errorf("%w: unknown scheme %q", qec.ErrInvalidParameter, req.Scheme)
	}
	if err != nil {
		s.writeError(w, "estimate", err)
		return
	}
	trialsTotal.Add(float64(req.Trials))
	s.log.Info("estimate",
		zap.String("scheme", req.Scheme),
		zap.Int("n", req.N),
		zap.Float64("p", req.P),
		zap.Int("trials", req.Trials),
		zap.Float64("rate", rate),
		zap.Duration("elapsed", time.Since(start)))

	resp := map[string]any{"rate": rate}
	if hasExact {
		resp["exact"] = exact
	}
	s.writeJSON(w, "estimate", http.StatusOK, resp)
}

func (s *server) handleCircuit(w http.ResponseWriter, r *http.Request) {
	var qasm string
	switch name := r.URL.Query().Get("name"); name {
	case "bitflip-encode":
		qasm = qec.BitFlipEncodeCircuit()
	case "bitflip-syndrome":
		qasm = qec.BitFlipSyndromeCircuit()
	case "phaseflip-encode":
		qasm = qec.PhaseFlipEncodeCircuit()
	default:
		s.writeError(w, "circuit", fmt.Errorf("%w: unknown circuit %q", qec.ErrInvalidParameter, name))
		return
	}
	s.writeJSON(w, "circuit", http.StatusOK, struct {
		QASM string `json:"qasm"`
	}{qasm})
}

func main() {
	var (
		addr      = flag.String("addr", ":8099", "listen address")
		maxTrials = flag.Int("max-trials", 2_000_000, "per-request trial cap")
	)
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	s := &server{log: log, code: qec.NewThreeQubitBitFlip(), maxTrials: *maxTrials}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/commutes", s.handleCommutes)
	mux.HandleFunc("/v1/syndrome", s.handleSyndrome)
	mux.HandleFunc("/v1/shot", s.handleShot)
	mux.HandleFunc("/v1/estimate", s.handleEstimate)
	mux.HandleFunc("/v1/circuit", s.handleCircuit)
	mux.Handle("/metrics", promhttp.Handler())

	log.Info("listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal("serve", zap.Error(err))
	}
}
