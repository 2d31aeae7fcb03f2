// server.go
// A compact HTTP server that receives JSON-encoded move-generation
// requests and returns JSON-encoded responses.

package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	skrafl "github.com/halldorb/skrafl-engine"
)

// MovesRequest describes an incoming /moves request: the board as one
// string per row ('.' for an empty square, an uppercase letter for a
// regular tile, a lowercase letter for a blank standing in for that
// letter) together with the rack to generate moves for.
type MovesRequest struct {
	Variant string   `json:"variant"`
	Board   []string `json:"board"`
	Rack    string   `json:"rack"`
	Limit   int      `json:"limit"`
}

// MoveResponse is one candidate move in the /moves reply.
type MoveResponse struct {
	Notation string `json:"notation"`
	Score    int    `json:"score"`
}

// HeaderJSON is the JSON response envelope.
type HeaderJSON struct {
	Version string         `json:"version"`
	Count   int            `json:"count"`
	Moves   []MoveResponse `json:"moves"`
}

// Server holds the variant registry serving /moves requests.
type Server struct {
	variants map[string]*skrafl.VariantDef
	lexicon  *skrafl.Lexicon
}

// NewServer builds a Server with a single default "standard" variant
// backed by lex. Callers can register additional variants with
// AddVariant before calling ListenAndServe.
func NewServer(lex *skrafl.Lexicon) *Server {
	return &Server{
		variants: map[string]*skrafl.VariantDef{
			"standard": skrafl.StandardEnglishVariant(),
		},
		lexicon: lex,
	}
}

// AddVariant registers a named variant for later requests.
func (s *Server) AddVariant(name string, v *skrafl.VariantDef) {
	s.variants[name] = v
}

// Handler returns an http.Handler serving /moves.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/moves", s.handleMoves)
	return mux
}

func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	var req MovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	variantName := req.Variant
	if variantName == "" {
		variantName = "standard"
	}
	variant, ok := s.variants[variantName]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown variant %q", variantName), http.StatusBadRequest)
		return
	}

	board := skrafl.NewBoard(variant)
	if len(req.Board) != board.Dim {
		http.Error(w, fmt.Sprintf("board must have %d rows", board.Dim), http.StatusBadRequest)
		return
	}
	for rowIdx, rowString := range req.Board {
		row := []rune(rowString)
		if len(row) != board.Dim {
			http.Error(w, fmt.Sprintf("board row %d must be %d characters", rowIdx, board.Dim), http.StatusBadRequest)
			return
		}
		for colIdx, letter := range row {
			if letter == '.' || letter == ' ' {
				continue
			}
			if err := board.SetLetter(rowIdx, colIdx, letter); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
	}

	if len(req.Rack) == 0 || len(req.Rack) > board.RackSize {
		http.Error(w, "invalid rack", http.StatusBadRequest)
		return
	}

	moves, err := skrafl.GenerateMoves(r.Context(), s.lexicon, board, req.Rack)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].Score > moves[j].Score })
	if req.Limit > 0 && req.Limit < len(moves) {
		moves = moves[:req.Limit]
	}

	resp := HeaderJSON{Version: "1.0", Count: len(moves)}
	for _, m := range moves {
		resp.Moves = append(resp.Moves, MoveResponse{Notation: m.Render(), Score: m.Score})
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
