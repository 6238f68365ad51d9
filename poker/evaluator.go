package poker

import (
	"fmt"
	"math/bits"
)

// Evaluator ranks hands of five to seven cards against a LookupTable. It holds
// no mutable state and may be shared between goroutines.
type Evaluator struct {
	table *LookupTable
}

// NewEvaluator creates an evaluator over table. A nil table selects
// DefaultLookupTable.
func NewEvaluator(table *LookupTable) *Evaluator {
	if table == nil {
		table = DefaultLookupTable()
	}
	return &Evaluator{table: table}
}

// Table returns the lookup table backing the evaluator.
func (e *Evaluator) Table() *LookupTable {
	return e.table
}

// subsets6 and subsets7 hold the index sets of every five-card subset.
var (
	subsets6 = fiveCardSubsets(6)
	subsets7 = fiveCardSubsets(7)
)

func fiveCardSubsets(n int) [][5]uint8 {
	var out [][5]uint8
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					for e := d + 1; e < n; e++ {
						out = append(out, [5]uint8{uint8(a), uint8(b), uint8(c), uint8(d), uint8(e)})
					}
				}
			}
		}
	}
	return out
}

// Evaluate returns the best rank any five of the board and hand cards make.
// Together they must hold 5, 6 or 7 cards.
func (e *Evaluator) Evaluate(board, hand []Card) (HandRank, error) {
	n := len(board) + len(hand)
	if n < 5 || n > 7 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidHandSize, n)
	}
	var buf [7]Card
	copy(buf[:], board)
	copy(buf[len(board):], hand)
	return e.evaluate(buf[:n])
}

// EvaluateCards is Evaluate for a single slice of 5 to 7 cards.
func (e *Evaluator) EvaluateCards(cards []Card) (HandRank, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}
	return e.evaluate(cards)
}

func (e *Evaluator) evaluate(cards []Card) (HandRank, error) {
	var subsets [][5]uint8
	switch len(cards) {
	case 5:
		return e.Evaluate5(cards[0], cards[1], cards[2], cards[3], cards[4])
	case 6:
		subsets = subsets6
	default:
		subsets = subsets7
	}

	best := MaxHighCard + 1 // sentinel weaker than any hand
	for _, s := range subsets {
		hr, err := e.Evaluate5(cards[s[0]], cards[s[1]], cards[s[2]], cards[s[3]], cards[s[4]])
		if err != nil {
			return 0, err
		}
		if hr < best {
			best = hr
		}
	}
	return best, nil
}

// Evaluate5 ranks exactly five cards. It fails only when the cards cannot form
// a hand, e.g. five cards of one rank or zero-valued cards.
func (e *Evaluator) Evaluate5(c0, c1, c2, c3, c4 Card) (HandRank, error) {
	rankBits := uint16((c0 | c1 | c2 | c3 | c4) >> bitrankShift)
	distinct := bits.OnesCount16(rankBits) == 5
	suited := (c0&c1&c2&c3&c4)>>suitShift&suitMask != 0

	var (
		hr HandRank
		ok bool
	)
	switch {
	case distinct && suited:
		hr, ok = e.table.Flush(rankBits)
	case distinct:
		hr, ok = e.table.Distinct(PrimeProduct(c0, c1, c2, c3, c4))
	default:
		hr, ok = e.table.Unsuited(PrimeProduct(c0, c1, c2, c3, c4))
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a valid five-card hand",
			ErrInvalidInput, FormatCards([]Card{c0, c1, c2, c3, c4}))
	}
	return hr, nil
}

// BestHand returns the strongest five-card subset of cards together with its rank.
func (e *Evaluator) BestHand(cards []Card) ([]Card, HandRank, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}
	subsets := fiveCardSubsets(len(cards))
	best := MaxHighCard + 1
	var bestSet [5]uint8
	for _, s := range subsets {
		hr, err := e.Evaluate5(cards[s[0]], cards[s[1]], cards[s[2]], cards[s[3]], cards[s[4]])
		if err != nil {
			return nil, 0, err
		}
		if hr < best {
			best, bestSet = hr, s
		}
	}
	hand := make([]Card, 5)
	for i, idx := range bestSet {
		hand[i] = cards[idx]
	}
	return hand, best, nil
}
