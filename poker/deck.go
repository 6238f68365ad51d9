package poker

import (
	"fmt"
	rand "math/rand/v2"
)

// Fresh returns the 52 cards in canonical order: ranks deuce through ace, each
// paired with spades, hearts, diamonds and clubs.
func Fresh() []Card {
	cards := make([]Card, 0, 52)
	for rank := Two; rank <= Ace; rank++ {
		for _, suit := range Suits {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Deck is a shuffled 52-card deck that cards are drawn from the top of.
type Deck struct {
	cards []Card
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Shuffle()
	return d
}

// Shuffle restores all 52 cards and shuffles them (Fisher-Yates)
func (d *Deck) Shuffle() {
	d.cards = Fresh()
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Pick removes and returns the top card.
func (d *Deck) Pick() (Card, error) {
	if len(d.cards) == 0 {
		return 0, ErrEmptyDeck
	}
	top := len(d.cards) - 1
	card := d.cards[top]
	d.cards = d.cards[:top]
	return card, nil
}

// Draw removes n cards from the top of the deck.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDraw, n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrInsufficientCards, n, len(d.cards))
	}
	drawn := make([]Card, n)
	for i := range drawn {
		drawn[i], _ = d.Pick()
	}
	return drawn, nil
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// String lists the remaining cards.
func (d *Deck) String() string {
	return FormatCards(d.cards)
}
