package server

import (
	"errors"
	"fmt"

	"github.com/lox/handrank/poker"
)

// EvaluateRequest asks for every hand to be ranked against a shared board.
// Cards may be given one per element ("Qs") or concatenated ("QsTh").
type EvaluateRequest struct {
	Board []string   `json:"board"`
	Hands [][]string `json:"hands"`
}

// HandResult is one hand's evaluation.
type HandResult struct {
	Hand       []string `json:"hand"`
	Rank       int      `json:"rank"`
	Class      string   `json:"class"`
	Percentile float64  `json:"percentile"`
}

// EvaluateResponse holds results in request order and the indices of the
// winning hands.
type EvaluateResponse struct {
	Results []HandResult `json:"results"`
	Winners []int        `json:"winners"`
}

// ErrorResponse is returned for requests that cannot be evaluated.
type ErrorResponse struct {
	Error string `json:"error"`
}

var errNoHands = errors.New("request has no hands")

func parseCardList(list []string) ([]poker.Card, error) {
	var cards []poker.Card
	for _, s := range list {
		parsed, err := poker.ParseCards(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, parsed...)
	}
	return cards, nil
}

// evaluate parses and ranks a request. A card may appear only once across the
// board and all hands.
func evaluate(eval *poker.Evaluator, req *EvaluateRequest) (*EvaluateResponse, error) {
	if len(req.Hands) == 0 {
		return nil, fmt.Errorf("%w: %w", poker.ErrInvalidInput, errNoHands)
	}
	board, err := parseCardList(req.Board)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	seen := make(map[poker.Card]bool)
	for _, c := range board {
		if seen[c] {
			return nil, fmt.Errorf("%w: duplicate card %s on board", poker.ErrInvalidInput, c)
		}
		seen[c] = true
	}

	hands := make([][]poker.Card, len(req.Hands))
	for i, h := range req.Hands {
		hand, err := parseCardList(h)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		for _, c := range hand {
			if seen[c] {
				return nil, fmt.Errorf("%w: duplicate card %s in hand %d", poker.ErrInvalidInput, c, i+1)
			}
			seen[c] = true
		}
		hands[i] = hand
	}

	results, err := eval.Summarize(board, hands)
	if err != nil {
		return nil, err
	}

	resp := &EvaluateResponse{
		Results: make([]HandResult, len(results)),
		Winners: poker.Winners(results),
	}
	for i, r := range results {
		cards := make([]string, len(r.Hand))
		for j, c := range r.Hand {
			cards[j] = c.String()
		}
		resp.Results[i] = HandResult{
			Hand:       cards,
			Rank:       int(r.Rank),
			Class:      r.Category.String(),
			Percentile: r.Percentile(),
		}
	}
	return resp, nil
}
