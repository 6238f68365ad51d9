package poker

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid card input")
	ErrInvalidHandSize   = errors.New("hand must contain 5, 6 or 7 cards")
	ErrInvalidRank       = errors.New("hand rank out of range")
	ErrEmptyDeck         = errors.New("deck is empty")
	ErrInsufficientCards = errors.New("not enough cards left in deck")
	ErrInvalidDraw       = errors.New("draw count must be positive")
)
