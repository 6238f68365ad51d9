package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	assert.Equal(t, Ace, aceSpades.Rank())
	assert.Equal(t, Spades, aceSpades.Suit())
	assert.Equal(t, "As", aceSpades.String())

	twoClubs := NewCard(Two, Clubs)
	assert.Equal(t, "2c", twoClubs.String())
}

func TestCardEncoding(t *testing.T) {
	t.Parallel()
	// Queen of hearts: bitrank 1<<10, suit 2, rank 10, prime 31.
	qh, err := ParseCard("Qh")
	require.NoError(t, err)
	assert.Equal(t, Card(67119647), qh)
	assert.Equal(t, uint32(31), qh.Prime())
	assert.Equal(t, uint16(1<<10), qh.BitRank())
	assert.Equal(t, Queen, qh.Rank())
	assert.Equal(t, Hearts, qh.Suit())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Two, Hearts)},
		{name: "king of diamonds", input: "Kd", wantCard: NewCard(King, Diamonds)},
		{name: "ten of clubs", input: "Tc", wantCard: NewCard(Ten, Clubs)},
		{name: "nine of spades", input: "9s", wantCard: NewCard(Nine, Spades)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "lowercase rank", input: "as", wantErr: true},
		{name: "uppercase suit", input: "AS", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput), "want ErrInvalidInput, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCard, card)
		})
	}
}

func TestAll52CardsRoundTrip(t *testing.T) {
	t.Parallel()
	seen := make(map[Card]bool)
	for _, r := range rankChars {
		for _, s := range suitChars {
			str := string(r) + string(s)
			card, err := ParseCard(str)
			require.NoError(t, err)
			assert.Equal(t, str, card.String())
			assert.False(t, seen[card], "duplicate encoding for %s", str)
			seen[card] = true
		}
	}
	assert.Len(t, seen, 52)
}

func TestCardFieldsConsistent(t *testing.T) {
	t.Parallel()
	for _, card := range Fresh() {
		rank := card.Rank()
		assert.Equal(t, Primes[rank], card.Prime(), card.String())
		assert.Equal(t, uint16(1)<<rank, card.BitRank(), card.String())
		assert.Contains(t, Suits[:], card.Suit(), card.String())
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	want := []Card{NewCard(Ace, Spades), NewCard(King, Spades), NewCard(Two, Hearts)}
	for _, input := range []string{"AsKs2h", "As Ks 2h", "As,Ks,2h", " As\tKs 2h "} {
		got, err := ParseCards(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseCards("AsK")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ParseCards("As Kx")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPrimeProducts(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("As Kd Qh Jc 9s")
	var rankBits uint16
	for _, c := range cards {
		rankBits |= c.BitRank()
	}
	assert.Equal(t, uint32(41*37*31*29*23), PrimeProduct(cards...))
	assert.Equal(t, PrimeProduct(cards...), PrimeProductFromRankBits(rankBits))

	// Suits never change the product.
	assert.Equal(t, PrimeProduct(MustParseCards("2s 2h 3d 3c 4s")...), PrimeProduct(MustParseCards("2d 2c 3s 3h 4h")...))
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}

func BenchmarkCardString(b *testing.B) {
	card := NewCard(Ace, Spades)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = card.String()
	}
}
