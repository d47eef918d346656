package huffpack

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	data := []byte("aaabb")
	_, cb, err := Analyze(data)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	bb, err := Encode(data, cb)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if bb.Len() != 5 {
		t.Errorf("expected 5 bits, got %d", bb.Len())
	}
	if expect, actual := "11100", bb.String(); expect != actual {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := []byte{0xe0}, bb.Bytes(); string(expect) != string(actual) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}
}

func TestEncode_LengthIsSumOfCodes(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	table, cb, err := Analyze(data)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	bb, err := Encode(data, cb)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var expect uint64
	for _, b := range data {
		hc, _ := cb.Lookup(Symbol(b))
		expect += uint64(hc.Size)
	}
	if bb.Len() != expect {
		t.Errorf("expected %d bits, got %d", expect, bb.Len())
	}
	if bb.Len() != cb.EncodedBits(table) {
		t.Errorf("expected EncodedBits %d to match, got %d", cb.EncodedBits(table), bb.Len())
	}
	if uint64(len(bb.Bytes())) != byteLen(bb.Len()) {
		t.Errorf("expected %d bytes, got %d", byteLen(bb.Len()), len(bb.Bytes()))
	}
}

func TestEncode_UnknownSymbol(t *testing.T) {
	_, cb, err := Analyze([]byte("abc"))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	_, err = Encode([]byte("abcd"), cb)
	var use *UnknownSymbolError
	if !errors.As(err, &use) {
		t.Fatalf("expected *UnknownSymbolError, got %v", err)
	}
	if use.Symbol != 'd' || use.Offset != 3 {
		t.Errorf("wrong error: %#v", use)
	}
}
