package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Parallel()
	eval := NewEvaluator(nil)
	board := MustParseCards("2h 2s Jc")
	hands := [][]Card{
		MustParseCards("Qs Th"),
		MustParseCards("Jd 9c"),
		MustParseCards("Qd Tc"),
	}

	results, err := eval.Summarize(board, hands)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, hands[i], r.Hand, "results keep input order")
	}
	assert.Equal(t, Pair, results[0].Category)
	assert.Equal(t, TwoPair, results[1].Category)
	assert.Equal(t, results[0].Rank, results[2].Rank, "suits do not matter")
	assert.Equal(t, []int{1}, Winners(results))
	assert.InDelta(t, Percentile(results[1].Rank), results[1].Percentile(), 1e-12)
}

func TestSummarizeSplitPot(t *testing.T) {
	t.Parallel()
	results, err := NewEvaluator(nil).Summarize(
		MustParseCards("As Ks Qs Js Ts"),
		[][]Card{MustParseCards("2h 3d"), MustParseCards("4c 5c")},
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, Winners(results))
}

func TestSummarizeReportsHandIndex(t *testing.T) {
	t.Parallel()
	_, err := NewEvaluator(nil).Summarize(
		MustParseCards("2h 2s Jc"),
		[][]Card{MustParseCards("Qs Th"), MustParseCards("Qd")},
	)
	assert.ErrorIs(t, err, ErrInvalidHandSize)
	assert.ErrorContains(t, err, "hand 2")
}

func TestWinnersEmpty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Winners(nil))
}

func TestHandSummary(t *testing.T) {
	t.Parallel()
	eval := NewEvaluator(nil)
	board := MustParseCards("2h 2s Jc 9d Qh")
	hands := [][]Card{
		MustParseCards("Qs Th"),
		MustParseCards("Jd 9c"),
	}

	streets, err := eval.HandSummary(board, hands)
	require.NoError(t, err)
	require.Len(t, streets, 3)

	assert.Equal(t, "Flop", streets[0].Name)
	assert.Len(t, streets[0].Board, 3)
	assert.Equal(t, []int{1}, streets[0].Winners)

	assert.Equal(t, "Turn", streets[1].Name)
	assert.Len(t, streets[1].Board, 4)
	assert.Equal(t, []int{1}, streets[1].Winners)

	// The river queen gives the first hand queens up, which beats jacks and nines.
	assert.Equal(t, "River", streets[2].Name)
	assert.Equal(t, TwoPair, streets[2].Results[0].Category)
	assert.Equal(t, TwoPair, streets[2].Results[1].Category)
	assert.Equal(t, []int{0}, streets[2].Winners)

	_, err = eval.HandSummary(board[:4], hands)
	assert.ErrorIs(t, err, ErrInvalidHandSize)
}
