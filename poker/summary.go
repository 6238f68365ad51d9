package poker

import "fmt"

// Result is one hand's evaluation against a board.
type Result struct {
	Hand     []Card
	Rank     HandRank
	Category Category
}

// Percentile is the result's rank as a fraction of the worst rank.
func (r Result) Percentile() float64 {
	return Percentile(r.Rank)
}

// Summarize evaluates every hand against the shared board and returns the
// results in input order.
func (e *Evaluator) Summarize(board []Card, hands [][]Card) ([]Result, error) {
	results := make([]Result, len(hands))
	for i, hand := range hands {
		hr, err := e.Evaluate(board, hand)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		results[i] = Result{Hand: hand, Rank: hr, Category: hr.Category()}
	}
	return results, nil
}

// Winners returns the indices of the results holding the best rank. Several
// indices mean a split.
func Winners(results []Result) []int {
	if len(results) == 0 {
		return nil
	}
	best := results[0].Rank
	for _, r := range results[1:] {
		if r.Rank < best {
			best = r.Rank
		}
	}
	var winners []int
	for i, r := range results {
		if r.Rank == best {
			winners = append(winners, i)
		}
	}
	return winners
}

// Street is the state of a hand after the flop, turn or river.
type Street struct {
	Name    string
	Board   []Card
	Results []Result
	Winners []int
}

var streetNames = [...]string{3: "Flop", 4: "Turn", 5: "River"}

// HandSummary replays a complete five-card board street by street and
// evaluates every hand on the flop, turn and river.
func (e *Evaluator) HandSummary(board []Card, hands [][]Card) ([]Street, error) {
	if len(board) != 5 {
		return nil, fmt.Errorf("%w: board has %d cards, want 5", ErrInvalidHandSize, len(board))
	}
	streets := make([]Street, 0, 3)
	for n := 3; n <= 5; n++ {
		results, err := e.Summarize(board[:n], hands)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", streetNames[n], err)
		}
		streets = append(streets, Street{
			Name:    streetNames[n],
			Board:   board[:n],
			Results: results,
			Winners: Winners(results),
		})
	}
	return streets, nil
}
