package huffpack

// Encode packs data into a BitBuffer by appending the Code of each byte in
// order.  The logical length of the result is the sum of the code sizes of
// every byte.
//
// Every byte of data must have a code in cb; Encode returns an
// *UnknownSymbolError for the first byte that does not.  This cannot happen
// when cb was derived from the FrequencyTable of data.
//
func Encode(data []byte, cb *CodeBook) (BitBuffer, error) {
	bw := newBitWriter(uint64(len(data)) * uint64(cb.MinSize()))
	for offset, b := range data {
		hc, found := cb.Lookup(Symbol(b))
		if !found {
			return BitBuffer{}, &UnknownSymbolError{Symbol: Symbol(b), Offset: offset}
		}
		if err := bw.WriteCode(hc); err != nil {
			return BitBuffer{}, err
		}
	}
	return bw.Finish()
}
