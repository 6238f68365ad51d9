package poker

import "fmt"

// HandRank represents the strength of a poker hand. Lower values are stronger:
// 1 is a royal flush and 7462 is 7-5-4-3-2 offsuit.
type HandRank uint16

// Category enumerates the hand classes, ordered from strongest to weakest.
type Category uint8

const (
	StraightFlush Category = iota + 1
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	Pair
	HighCard
)

const (
	straightFlushCount = 10
	fourOfAKindCount   = 13 * 12
	fullHouseCount     = 13 * 12
	flushCount         = 1277
	straightCount      = 10
	threeOfAKindCount  = 13 * 66
	twoPairCount       = 78 * 11
	onePairCount       = 13 * 220
	highCardCount      = 1277
)

// Inclusive upper bound of each category.
const (
	MaxStraightFlush HandRank = straightFlushCount
	MaxFourOfAKind            = MaxStraightFlush + fourOfAKindCount
	MaxFullHouse              = MaxFourOfAKind + fullHouseCount
	MaxFlush                  = MaxFullHouse + flushCount
	MaxStraight               = MaxFlush + straightCount
	MaxThreeOfAKind           = MaxStraight + threeOfAKindCount
	MaxTwoPair                = MaxThreeOfAKind + twoPairCount
	MaxPair                   = MaxTwoPair + onePairCount
	MaxHighCard               = MaxPair + highCardCount
)

// categoryBounds is indexed by Category.
var categoryBounds = [...]HandRank{
	0,
	MaxStraightFlush,
	MaxFourOfAKind,
	MaxFullHouse,
	MaxFlush,
	MaxStraight,
	MaxThreeOfAKind,
	MaxTwoPair,
	MaxPair,
	MaxHighCard,
}

// Categories lists every category from strongest to weakest.
var Categories = [...]Category{
	StraightFlush, FourOfAKind, FullHouse, Flush, Straight,
	ThreeOfAKind, TwoPair, Pair, HighCard,
}

// Bounds returns the inclusive rank range covered by the category.
func (c Category) Bounds() (lo, hi HandRank) {
	if c < StraightFlush || c > HighCard {
		return 0, 0
	}
	return categoryBounds[c-1] + 1, categoryBounds[c]
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case Pair:
		return "Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// RankClass returns the category a rank falls into.
func RankClass(hr HandRank) (Category, error) {
	if hr < 1 || hr > MaxHighCard {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidRank, hr, MaxHighCard)
	}
	for _, c := range Categories {
		if hr <= categoryBounds[c] {
			return c, nil
		}
	}
	return HighCard, nil
}

// Category returns the rank's category, or 0 for an out of range rank.
func (hr HandRank) Category() Category {
	c, _ := RankClass(hr)
	return c
}

// String returns the category name of the rank.
func (hr HandRank) String() string {
	return hr.Category().String()
}

// Percentile expresses the rank as a fraction of the worst rank. Lower is stronger.
func Percentile(hr HandRank) float64 {
	return float64(hr) / float64(MaxHighCard)
}

// Strength is 1 - Percentile, so 1.0 is a royal flush.
func Strength(hr HandRank) float64 {
	return 1 - Percentile(hr)
}

// CompareHands compares two hands and returns 1 if a wins, -1 if b wins, 0 for tie
func CompareHands(a, b HandRank) int {
	if a < b {
		return 1
	} else if a > b {
		return -1
	}
	return 0
}
