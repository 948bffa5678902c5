package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lgbarn/gym-chess-go/internal/config"
	chesserrors "github.com/lgbarn/gym-chess-go/internal/errors"
	"github.com/lgbarn/gym-chess-go/internal/gym"
)

// Operations, used both as route names and as websocket op values.
const (
	OpInitial     = "initial"
	OpNextState   = "next-state"
	OpMoves       = "moves"
	OpCastleMoves = "castle-moves"
	OpUpdateState = "update-state"
	OpMinimax     = "minimax"
)

var (
	errMissingState = errors.New("missing state")
	errUnknownOp    = errors.New("unknown op")
	errBadDepth     = errors.New("depth out of range")
)

// Request is the envelope accepted by every operation. Fields an
// operation does not use are ignored.
type Request struct {
	Op     string        `json:"op,omitempty"`
	State  *gym.Snapshot `json:"state,omitempty"`
	Player string        `json:"player,omitempty"`
	Move   string        `json:"move,omitempty"`
	Depth  int           `json:"depth,omitempty"` // 0 selects the configured depth
	Attack bool          `json:"attack,omitempty"`
}

type stateResponse struct {
	State gym.Snapshot `json:"state"`
}

type transitionResponse struct {
	State  gym.Snapshot `json:"state"`
	Reward int          `json:"reward"`
}

type movesResponse struct {
	Moves []string `json:"moves"`
}

type minimaxResponse struct {
	Score int    `json:"score"`
	Move  string `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// dispatch runs one operation and returns the value to encode.
func (s *Server) dispatch(ctx context.Context, req Request) (interface{}, error) {
	if req.Op == OpInitial {
		return stateResponse{State: gym.InitialSnapshot()}, nil
	}
	if req.State == nil {
		return nil, errMissingState
	}
	snap := *req.State

	switch req.Op {
	case OpNextState:
		next, reward, err := s.engine.NextState(snap, req.Player, req.Move)
		if err != nil {
			return nil, err
		}
		return transitionResponse{State: next, Reward: reward}, nil

	case OpMoves:
		moves, err := s.engine.PossibleMoves(snap, req.Player, req.Attack)
		if err != nil {
			return nil, err
		}
		return movesResponse{Moves: nonNil(moves)}, nil

	case OpCastleMoves:
		moves, err := s.engine.CastleMoves(snap, req.Player)
		if err != nil {
			return nil, err
		}
		return movesResponse{Moves: nonNil(moves)}, nil

	case OpUpdateState:
		next, err := s.engine.UpdateState(snap)
		if err != nil {
			return nil, err
		}
		return stateResponse{State: next}, nil

	case OpMinimax:
		depth := req.Depth
		if depth == 0 {
			depth = s.cfg.Search.Depth
		}
		if depth < 0 || depth > config.MaxDepth {
			return nil, fmt.Errorf("%w: %d", errBadDepth, req.Depth)
		}
		score, move, err := s.engine.Minimax(ctx, snap, depth, req.Player)
		if err != nil {
			return nil, err
		}
		return minimaxResponse{Score: score, Move: move}, nil

	default:
		return nil, fmt.Errorf("%w %q", errUnknownOp, req.Op)
	}
}

func (s *Server) initialHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := s.dispatch(r.Context(), Request{Op: OpInitial})
	s.respond(w, resp, err)
}

// opHandler decodes a JSON request body for op and writes the result.
func (s *Server) opHandler(op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "decoding request: " + err.Error()})
			return
		}
		req.Op = op

		resp, err := s.dispatch(r.Context(), req)
		s.respond(w, resp, err)
	}
}

func (s *Server) respond(w http.ResponseWriter, resp interface{}, err error) {
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.logf(1, "internal error: %v\n", err)
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// statusFor maps an error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, chesserrors.ErrInvalidColor),
		errors.Is(err, chesserrors.ErrInvalidMoveFormat),
		errors.Is(err, chesserrors.ErrInvalidPiece),
		errors.Is(err, chesserrors.ErrInvalidFEN),
		errors.Is(err, errMissingState),
		errors.Is(err, errUnknownOp),
		errors.Is(err, errBadDepth):
		return http.StatusBadRequest
	case errors.Is(err, chesserrors.ErrIllegalMove),
		errors.Is(err, chesserrors.ErrImpossiblePosition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:gosec // G104: client gone, nothing to report
}

func nonNil(moves []string) []string {
	if moves == nil {
		return []string{}
	}
	return moves
}
