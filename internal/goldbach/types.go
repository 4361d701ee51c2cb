package goldbach

// Pair is a Goldbach pair: two primes p <= q with p+q equal to some even
// number. Pairs are ordered so the mirrored form (q, p) never appears.
type Pair struct {
	P int `json:"p"`
	Q int `json:"q"`
}

// Entry holds the full decomposition of one even number.
type Entry struct {
	N     int    `json:"n"`
	Pairs []Pair `json:"pairs"`
}

// Count returns the number of Goldbach pairs for this entry's number.
func (e Entry) Count() int { return len(e.Pairs) }

// RangeResult is the outcome of analyzing a contiguous range of even
// numbers. Entries are in ascending N order, one per even number in
// [Min, Max]. A RangeResult is never mutated after the analyzer returns it.
type RangeResult struct {
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Entries []Entry `json:"entries"`
}

// Len returns the number of analyzed even numbers.
func (r *RangeResult) Len() int { return len(r.Entries) }

// TotalPairs returns the total number of Goldbach pairs across the range.
func (r *RangeResult) TotalPairs() int {
	total := 0
	for _, e := range r.Entries {
		total += len(e.Pairs)
	}
	return total
}
