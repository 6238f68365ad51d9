package poker

import (
	"fmt"
	"strings"
)

// Card is a 32-bit encoded playing card:
//
//	bitrank     suit rank   prime
//	+--------+--------+--------+--------+
//	|xxxbbbbb|bbbbbbbb|cdhsrrrr|xxpppppp|
//	+--------+--------+--------+--------+
//
// p is the prime of the rank (deuce=2 ... ace=41), r is the rank (deuce=0 ... ace=12),
// cdhs is the one-hot suit and b is the one-hot rank bit.
type Card uint32

// Ranks
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suits are one-hot so that a hand's suits can be AND-ed together.
const (
	Spades   uint8 = 1
	Hearts   uint8 = 2
	Diamonds uint8 = 4
	Clubs    uint8 = 8
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "shdc"

	primeMask    = 0x3F
	rankShift    = 8
	rankMask     = 0xF
	suitShift    = 12
	suitMask     = 0xF
	bitrankMask  = 0x1FFF
	bitrankShift = 16
)

// Primes maps a rank (0-12) to its prime.
var Primes = [13]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// Suits lists the suits in canonical order.
var Suits = [4]uint8{Spades, Hearts, Diamonds, Clubs}

// NewCard builds a card from a rank (0-12) and a one-hot suit.
func NewCard(rank, suit uint8) Card {
	return Card(uint32(1)<<rank<<bitrankShift |
		uint32(suit)<<suitShift |
		uint32(rank)<<rankShift |
		Primes[rank])
}

// ParseCard parses a two character card such as "As" or "Td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: card %q must be two characters", ErrInvalidInput, s)
	}
	rank := strings.IndexByte(rankChars, s[0])
	if rank < 0 {
		return 0, fmt.Errorf("%w: unknown rank %q in %q", ErrInvalidInput, s[0], s)
	}
	suit := strings.IndexByte(suitChars, s[1])
	if suit < 0 {
		return 0, fmt.Errorf("%w: unknown suit %q in %q", ErrInvalidInput, s[1], s)
	}
	return NewCard(uint8(rank), Suits[suit]), nil
}

// ParseCards parses a run of cards. Cards may be separated by whitespace or
// commas, or concatenated ("AsKsQsJsTs").
func ParseCards(s string) ([]Card, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', ',':
			return -1
		}
		return r
	}, s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: card string length %d is odd", ErrInvalidInput, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// Rank returns the rank 0-12.
func (c Card) Rank() uint8 {
	return uint8(uint32(c) >> rankShift & rankMask)
}

// Suit returns the one-hot suit.
func (c Card) Suit() uint8 {
	return uint8(uint32(c) >> suitShift & suitMask)
}

// BitRank returns the one-hot rank bit (bit position = rank).
func (c Card) BitRank() uint16 {
	return uint16(uint32(c) >> bitrankShift & bitrankMask)
}

// Prime returns the prime associated with the card's rank.
func (c Card) Prime() uint32 {
	return uint32(c) & primeMask
}

// String returns the two character form, e.g. "As".
func (c Card) String() string {
	var suit byte = '?'
	switch c.Suit() {
	case Spades:
		suit = 's'
	case Hearts:
		suit = 'h'
	case Diamonds:
		suit = 'd'
	case Clubs:
		suit = 'c'
	}
	rank := c.Rank()
	if int(rank) >= len(rankChars) {
		return "??"
	}
	return string([]byte{rankChars[rank], suit})
}

// RankChar returns the rank character of the card.
func (c Card) RankChar() byte {
	return rankChars[c.Rank()%13]
}

// FormatCards joins cards with spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// PrimeProduct multiplies the rank primes of the cards. Five cards fit easily
// in 32 bits (41^4*37 is the largest product).
func PrimeProduct(cards ...Card) uint32 {
	product := uint32(1)
	for _, c := range cards {
		product *= c.Prime()
	}
	return product
}

// PrimeProductFromRankBits multiplies the primes of every rank set in bits.
// Only meaningful when the ranks are known to be distinct.
func PrimeProductFromRankBits(bits uint16) uint32 {
	product := uint32(1)
	for r := 0; r < 13; r++ {
		if bits&(1<<r) != 0 {
			product *= Primes[r]
		}
	}
	return product
}
