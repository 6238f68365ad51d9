package poker

import (
	"cmp"
	"fmt"
	"math/bits"
	"slices"
	"sync"
)

// TableKind identifies one of the three lookup tables.
type TableKind uint8

const (
	// FlushTable is keyed by the rank bit pattern of five suited cards.
	FlushTable TableKind = iota
	// UnsuitedTable is keyed by the prime product of hands with a repeated rank.
	UnsuitedTable
	// DistinctTable is keyed by the prime product of five distinct unsuited ranks.
	DistinctTable
)

// TableKinds lists every table kind.
var TableKinds = [...]TableKind{FlushTable, UnsuitedTable, DistinctTable}

func (k TableKind) String() string {
	switch k {
	case FlushTable:
		return "flush"
	case UnsuitedTable:
		return "unsuited"
	case DistinctTable:
		return "distinct"
	default:
		return "unknown"
	}
}

// Number of fingerprints in each table.
const (
	flushEntries    = straightFlushCount + flushCount
	unsuitedEntries = fourOfAKindCount + fullHouseCount + threeOfAKindCount + twoPairCount + onePairCount
	distinctEntries = straightCount + highCardCount
)

// straightPatterns are the rank bit patterns of every straight, strongest first.
// The wheel (5-4-3-2-A) is last.
var straightPatterns = [10]uint16{
	0x1F00, // A-K-Q-J-T
	0x0F80,
	0x07C0,
	0x03E0,
	0x01F0,
	0x00F8,
	0x007C,
	0x003E,
	0x001F, // 6-5-4-3-2
	0x100F, // 5-4-3-2-A
}

// highCardPatterns are the five-distinct-rank patterns that do not form a
// straight, strongest first. Descending numeric order of the pattern is the
// high-card tie-break order.
var highCardPatterns = func() []uint16 {
	patterns := make([]uint16, 0, highCardCount)
	for p := uint16(0x1F00); p >= 0x1F; p-- {
		if bits.OnesCount16(p) != 5 || slices.Contains(straightPatterns[:], p) {
			continue
		}
		patterns = append(patterns, p)
	}
	return patterns
}()

// descendingRanks is ace down to deuce.
var descendingRanks = [13]uint8{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

// LookupTable maps five-card fingerprints to their HandRank. It is built once
// and is read-only afterwards, so it is safe for concurrent use.
type LookupTable struct {
	flush    [1 << 13]HandRank
	unsuited map[uint32]HandRank
	distinct map[uint32]HandRank
}

// DefaultLookupTable returns the process-wide table, building it on first use.
var DefaultLookupTable = sync.OnceValue(NewLookupTable)

// NewLookupTable enumerates every distinct five-card hand strength and assigns
// ranks 1 through 7462.
func NewLookupTable() *LookupTable {
	t := &LookupTable{
		unsuited: make(map[uint32]HandRank, unsuitedEntries),
		distinct: make(map[uint32]HandRank, distinctEntries),
	}
	t.buildFlushesAndStraights()
	t.buildMultiples()
	return t
}

func (t *LookupTable) buildFlushesAndStraights() {
	for i, p := range straightPatterns {
		t.flush[p] = HandRank(i + 1)
		t.distinct[PrimeProductFromRankBits(p)] = MaxFlush + HandRank(i+1)
	}
	for i, p := range highCardPatterns {
		t.flush[p] = MaxFullHouse + HandRank(i+1)
		t.distinct[PrimeProductFromRankBits(p)] = MaxPair + HandRank(i+1)
	}
}

func (t *LookupTable) buildMultiples() {
	pow := func(r uint8, n int) uint32 {
		v := uint32(1)
		for range n {
			v *= Primes[r]
		}
		return v
	}

	// Four of a kind: quad rank, then kicker.
	rank := MaxStraightFlush + 1
	for _, quad := range descendingRanks {
		for _, kicker := range kickers(quad) {
			t.unsuited[pow(quad, 4)*Primes[kicker]] = rank
			rank++
		}
	}

	// Full house: trips, then pair.
	rank = MaxFourOfAKind + 1
	for _, trips := range descendingRanks {
		for _, pair := range kickers(trips) {
			t.unsuited[pow(trips, 3)*pow(pair, 2)] = rank
			rank++
		}
	}

	// Three of a kind: trips, then two kickers.
	rank = MaxStraight + 1
	for _, trips := range descendingRanks {
		ks := kickers(trips)
		for i := 0; i < len(ks); i++ {
			for j := i + 1; j < len(ks); j++ {
				t.unsuited[pow(trips, 3)*Primes[ks[i]]*Primes[ks[j]]] = rank
				rank++
			}
		}
	}

	// Two pair: high pair, low pair, then kicker.
	rank = MaxThreeOfAKind + 1
	for i, high := range descendingRanks {
		for _, low := range descendingRanks[i+1:] {
			for _, kicker := range kickers(high, low) {
				t.unsuited[pow(high, 2)*pow(low, 2)*Primes[kicker]] = rank
				rank++
			}
		}
	}

	// One pair: pair, then three kickers.
	rank = MaxTwoPair + 1
	for _, pair := range descendingRanks {
		ks := kickers(pair)
		for i := 0; i < len(ks); i++ {
			for j := i + 1; j < len(ks); j++ {
				for k := j + 1; k < len(ks); k++ {
					t.unsuited[pow(pair, 2)*Primes[ks[i]]*Primes[ks[j]]*Primes[ks[k]]] = rank
					rank++
				}
			}
		}
	}
}

// kickers returns the ranks, highest first, that are not in used.
func kickers(used ...uint8) []uint8 {
	out := make([]uint8, 0, 13-len(used))
	for _, r := range descendingRanks {
		if !slices.Contains(used, r) {
			out = append(out, r)
		}
	}
	return out
}

// Flush looks up a five-suited-card rank bit pattern.
func (t *LookupTable) Flush(pattern uint16) (HandRank, bool) {
	if int(pattern) >= len(t.flush) {
		return 0, false
	}
	hr := t.flush[pattern]
	return hr, hr != 0
}

// Unsuited looks up the prime product of a hand with a repeated rank.
func (t *LookupTable) Unsuited(product uint32) (HandRank, bool) {
	hr, ok := t.unsuited[product]
	return hr, ok
}

// Distinct looks up the prime product of five distinct, unsuited ranks.
func (t *LookupTable) Distinct(product uint32) (HandRank, bool) {
	hr, ok := t.distinct[product]
	return hr, ok
}

// Entry is one fingerprint and its rank.
type Entry struct {
	Key  uint32
	Rank HandRank
}

// Entries returns the contents of one table, ordered by rank.
func (t *LookupTable) Entries(kind TableKind) []Entry {
	var entries []Entry
	switch kind {
	case FlushTable:
		entries = make([]Entry, 0, flushEntries)
		for p, hr := range t.flush {
			if hr != 0 {
				entries = append(entries, Entry{Key: uint32(p), Rank: hr})
			}
		}
	case UnsuitedTable:
		entries = mapEntries(t.unsuited)
	case DistinctTable:
		entries = mapEntries(t.distinct)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
	return entries
}

func mapEntries(m map[uint32]HandRank) []Entry {
	entries := make([]Entry, 0, len(m))
	for k, hr := range m {
		entries = append(entries, Entry{Key: k, Rank: hr})
	}
	return entries
}

// Len returns the number of fingerprints in one table.
func (t *LookupTable) Len(kind TableKind) int {
	switch kind {
	case FlushTable:
		n := 0
		for _, hr := range t.flush {
			if hr != 0 {
				n++
			}
		}
		return n
	case UnsuitedTable:
		return len(t.unsuited)
	case DistinctTable:
		return len(t.distinct)
	}
	return 0
}

// NewLookupTableFromEntries rebuilds a table from persisted entries. Entries
// are checked for shape (key format, rank range, table size) only; use Equal
// against a freshly built table to check the values themselves.
func NewLookupTableFromEntries(entries map[TableKind][]Entry) (*LookupTable, error) {
	t := &LookupTable{
		unsuited: make(map[uint32]HandRank, len(entries[UnsuitedTable])),
		distinct: make(map[uint32]HandRank, len(entries[DistinctTable])),
	}
	for _, kind := range TableKinds {
		for _, e := range entries[kind] {
			if e.Rank < 1 || e.Rank > MaxHighCard {
				return nil, fmt.Errorf("%s table: %w: key %d has rank %d", kind, ErrInvalidRank, e.Key, e.Rank)
			}
			switch kind {
			case FlushTable:
				if e.Key >= uint32(len(t.flush)) || bits.OnesCount32(e.Key) != 5 {
					return nil, fmt.Errorf("flush table: key %d is not a five-rank bit pattern", e.Key)
				}
				t.flush[e.Key] = e.Rank
			case UnsuitedTable:
				t.unsuited[e.Key] = e.Rank
			case DistinctTable:
				t.distinct[e.Key] = e.Rank
			}
		}
	}

	want := map[TableKind]int{
		FlushTable:    flushEntries,
		UnsuitedTable: unsuitedEntries,
		DistinctTable: distinctEntries,
	}
	for _, kind := range TableKinds {
		if got := t.Len(kind); got != want[kind] {
			return nil, fmt.Errorf("%s table has %d entries, want %d", kind, got, want[kind])
		}
	}
	return t, nil
}

// Equal reports the first difference between two tables, or nil when they
// hold the same fingerprints and ranks.
func (t *LookupTable) Equal(other *LookupTable) error {
	for _, kind := range TableKinds {
		if got, want := t.Len(kind), other.Len(kind); got != want {
			return fmt.Errorf("%s table has %d entries, want %d", kind, got, want)
		}
		want := other.Entries(kind)
		got := t.Entries(kind)
		for i := range want {
			if got[i] != want[i] {
				return fmt.Errorf("%s table entry %d is %d,%d, want %d,%d",
					kind, i, got[i].Key, got[i].Rank, want[i].Key, want[i].Rank)
			}
		}
	}
	return nil
}
