package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/rs/zerolog/log"

	"crosswarped.com/xwfill"
	"crosswarped.com/xwfill/internal/wordlist"
	"crosswarped.com/xwfill/pkg/structfile"
)

type SolveGridRequest struct {
	Structure []string `json:"structure"`
	Words     []string `json:"words"`
	WordScope string   `json:"wordScope"`
}

type SolveGridResponse struct {
	Success bool     `json:"success"`
	Grid    []string `json:"grid,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func execute(ctx context.Context, req SolveGridRequest) ([]string, error) {
	if len(req.Structure) == 0 {
		return nil, fmt.Errorf("structure must not be empty")
	}

	crossword, err := structfile.Parse(strings.NewReader(strings.Join(req.Structure, "\n")))
	if err != nil {
		return nil, fmt.Errorf("structfile.Parse: %w", err)
	}

	words := req.Words
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}

	if req.WordScope != "" {
		scoped, err := wordlist.FromBigQuery(ctx, "xword-x", req.WordScope)
		if err != nil {
			return nil, fmt.Errorf("wordlist.FromBigQuery: %w", err)
		}
		words = append(words, scoped...)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("words must not be empty")
	}

	timeout := 1 * time.Minute
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline) - 5*time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	assignment, err := xwfill.NewSolver(crossword, words).Solve(ctx)
	if err != nil {
		return nil, err
	}

	return strings.Split(crossword.LetterGrid(assignment).Repr(), "\n"), nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func solveGrid(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolveGridRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("parsing JSON body")
		w.WriteHeader(http.StatusBadRequest)
		response := SolveGridResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	grid, err := execute(r.Context(), req)

	response := SolveGridResponse{
		Success: err == nil,
		Grid:    grid,
	}

	switch {
	case errors.Is(err, xwfill.ErrNoSolution):
		response.Error = "No grid fill exists for the given structure and words"
	case err != nil:
		response.Error = err.Error()
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("marshaling response")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/solve-grid", solveGrid)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatal().Err(err).Msg("funcframework.StartHostPort")
	}
}
