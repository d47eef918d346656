package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// FrequencyTable holds the number of occurrences of each Symbol in some input.
// A Symbol with a count of 0 does not appear in the input.
type FrequencyTable [NumSymbols]uint32

// Count builds the FrequencyTable for data.
//
// Count returns ErrFrequencyOverflow if any single byte value occurs more
// than math.MaxUint32 times, since such a count cannot be stored in a
// Container.
//
func Count(data []byte) (FrequencyTable, error) {
	var wide [NumSymbols]uint64
	for _, b := range data {
		wide[b]++
	}

	var table FrequencyTable
	for symbol, n := range wide {
		if n > math.MaxUint32 {
			return FrequencyTable{}, fmt.Errorf("%w: symbol %d occurs %d times", ErrFrequencyOverflow, symbol, n)
		}
		table[symbol] = uint32(n)
	}
	return table, nil
}

// Distinct returns the number of symbols with a non-zero count.
func (table FrequencyTable) Distinct() int {
	var n int
	for _, freq := range table {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the input.
func (table FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range table {
		sum += uint64(freq)
	}
	return sum
}

// Symbols returns the symbols with a non-zero count, in ascending order.
func (table FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, table.Distinct())
	for symbol, freq := range table {
		if freq != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Dump writes a programmer-readable listing of the non-zero counts to the
// given writer.
func (table FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, symbol := range table.Symbols() {
		fmt.Fprintf(&buf, "\t%d: %d\n", symbol, table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
