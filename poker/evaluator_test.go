package poker

import (
	rand "math/rand/v2"
	"testing"

	refpoker "github.com/chehsunliu/poker"
	phpoker "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateRoyalFlush(t *testing.T) {
	t.Parallel()
	eval := NewEvaluator(nil)
	hr, err := eval.EvaluateCards(MustParseCards("As Ks Qs Js Ts"))
	require.NoError(t, err)
	assert.Equal(t, HandRank(1), hr)

	hr, err = eval.Evaluate(MustParseCards("As Ks Qs Js Ts"), MustParseCards("2h 3d"))
	require.NoError(t, err)
	assert.Equal(t, HandRank(1), hr, "royal flush subset dominates the extra cards")
}

func TestEvaluateWorstHand(t *testing.T) {
	t.Parallel()
	hr, err := NewEvaluator(nil).EvaluateCards(MustParseCards("2c 3d 4h 5s 7c"))
	require.NoError(t, err)
	assert.Equal(t, MaxHighCard, hr)
}

func TestEvaluateHandSize(t *testing.T) {
	t.Parallel()
	eval := NewEvaluator(nil)
	for _, n := range []int{0, 1, 4, 8, 9} {
		cards := Fresh()[:n]
		_, err := eval.EvaluateCards(cards)
		assert.ErrorIs(t, err, ErrInvalidHandSize, "%d cards", n)
	}

	_, err := eval.Evaluate(MustParseCards("2h 2s Jc"), MustParseCards("Qs"))
	assert.ErrorIs(t, err, ErrInvalidHandSize)
	_, err = eval.Evaluate(MustParseCards("2h 2s Jc 8d 9d 4c"), MustParseCards("Qs Th"))
	assert.ErrorIs(t, err, ErrInvalidHandSize)
}

func TestEvaluateImpossibleHand(t *testing.T) {
	t.Parallel()
	_, err := NewEvaluator(nil).EvaluateCards(MustParseCards("As As As As As"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()
	// One hand per category, strongest first, mixing 5, 6 and 7 card inputs.
	hands := []struct {
		cards string
		want  Category
	}{
		{"9s 8s 7s 6s 5s 4h 3h", StraightFlush},
		{"As Ah Ad Ac Ks 2h", FourOfAKind},
		{"As Ah Ad Ks Kh", FullHouse},
		{"As Ks Qs 9s 7s 4h 3h", Flush},
		{"As Kh Qd Js Ts 9h", Straight},
		{"As Ah Ad Ks Qh 2h 3h", ThreeOfAKind},
		{"As Ah Kd Ks Qh 2h 3h", TwoPair},
		{"As Ah Kd Qs 9h", Pair},
		{"As Kh Qd 9s 7c 5h 3h", HighCard},
	}

	eval := NewEvaluator(nil)
	prev := HandRank(0)
	for _, tc := range hands {
		hr, err := eval.EvaluateCards(MustParseCards(tc.cards))
		require.NoError(t, err, tc.cards)
		assert.Equal(t, tc.want, hr.Category(), tc.cards)
		assert.Greater(t, hr, prev, "%s must be weaker than the previous category", tc.cards)
		prev = hr
	}
}

func TestEvaluateScenarioPairOfDeuces(t *testing.T) {
	t.Parallel()
	eval := NewEvaluator(nil)
	board := MustParseCards("2h 2s Jc")

	pair, err := eval.Evaluate(board, MustParseCards("Qs Th"))
	require.NoError(t, err)
	assert.Equal(t, Pair, pair.Category())

	twoPair, err := eval.Evaluate(board, MustParseCards("Jd 9c"))
	require.NoError(t, err)
	assert.Equal(t, TwoPair, twoPair.Category())
	assert.Less(t, twoPair, pair)
}

func TestEvaluateOrderInvariant(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1, 2))
	eval := NewEvaluator(nil)
	for i := 0; i < 2000; i++ {
		deck := NewDeck(rng)
		cards, err := deck.Draw(7)
		require.NoError(t, err)

		want, err := eval.EvaluateCards(cards)
		require.NoError(t, err)

		shuffled := append([]Card(nil), cards...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got, err := eval.Evaluate(shuffled[:3], shuffled[3:])
		require.NoError(t, err)
		assert.Equal(t, want, got, FormatCards(cards))
	}
}

func TestEvaluateMatchesReference(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(3, 4))
	eval := NewEvaluator(nil)
	for i := 0; i < 20000; i++ {
		n := 5 + i%3
		deck := NewDeck(rng)
		cards, err := deck.Draw(n)
		require.NoError(t, err)

		ref := make([]refpoker.Card, n)
		for j, c := range cards {
			ref[j] = refpoker.NewCard(c.String())
		}

		got, err := eval.EvaluateCards(cards)
		require.NoError(t, err)
		require.Equal(t, int32(refpoker.Evaluate(ref)), int32(got), FormatCards(cards))
	}
}

func toPaulHankin(t *testing.T, c Card) phpoker.Card {
	t.Helper()
	rank := phpoker.Rank(c.Rank() + 2)
	if c.Rank() == Ace {
		rank = 1
	}
	var suit phpoker.Suit
	switch c.Suit() {
	case Spades:
		suit = phpoker.Spade
	case Hearts:
		suit = phpoker.Heart
	case Diamonds:
		suit = phpoker.Diamond
	case Clubs:
		suit = phpoker.Club
	}
	pc, err := phpoker.MakeCard(suit, rank)
	require.NoError(t, err)
	return pc
}

func TestEvaluateOrderingMatchesIndependentEvaluator(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(5, 6))
	eval := NewEvaluator(nil)
	for i := 0; i < 5000; i++ {
		deck := NewDeck(rng)
		board, err := deck.Draw(5)
		require.NoError(t, err)
		a, err := deck.Draw(2)
		require.NoError(t, err)
		b, err := deck.Draw(2)
		require.NoError(t, err)

		rankA, err := eval.Evaluate(board, a)
		require.NoError(t, err)
		rankB, err := eval.Evaluate(board, b)
		require.NoError(t, err)

		var handA, handB [7]phpoker.Card
		for j, c := range append(append([]Card(nil), board...), a...) {
			handA[j] = toPaulHankin(t, c)
		}
		for j, c := range append(append([]Card(nil), board...), b...) {
			handB[j] = toPaulHankin(t, c)
		}
		// paulhankin scores are higher-is-stronger.
		scoreA, scoreB := phpoker.Eval7(&handA), phpoker.Eval7(&handB)
		want := 0
		if scoreA > scoreB {
			want = 1
		} else if scoreA < scoreB {
			want = -1
		}
		require.Equal(t, want, CompareHands(rankA, rankB),
			"board %s, %s vs %s", FormatCards(board), FormatCards(a), FormatCards(b))
	}
}

func TestBestHand(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("2h 3d As Ks Qs Js Ts")
	best, hr, err := NewEvaluator(nil).BestHand(cards)
	require.NoError(t, err)
	assert.Equal(t, HandRank(1), hr)
	assert.ElementsMatch(t, MustParseCards("As Ks Qs Js Ts"), best)
}

func TestEvaluatorSharedAcrossGoroutines(t *testing.T) {
	t.Parallel()
	eval := NewEvaluator(nil)
	cards := MustParseCards("As Ah Kd Ks Qh 2h 3h")
	want, err := eval.EvaluateCards(cards)
	require.NoError(t, err)

	done := make(chan HandRank, 8)
	for range 8 {
		go func() {
			hr, _ := eval.EvaluateCards(cards)
			done <- hr
		}()
	}
	for range 8 {
		assert.Equal(t, want, <-done)
	}
}

func BenchmarkEvaluate5(b *testing.B) {
	eval := NewEvaluator(nil)
	c := MustParseCards("As Kh Qd 9s 7c")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eval.Evaluate5(c[0], c[1], c[2], c[3], c[4])
	}
}

func BenchmarkEvaluate7(b *testing.B) {
	eval := NewEvaluator(nil)
	rng := rand.New(rand.NewPCG(42, 42))
	hands := make([][]Card, 1000)
	for i := range hands {
		hands[i], _ = NewDeck(rng).Draw(7)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = eval.EvaluateCards(hands[i%len(hands)])
	}
}
