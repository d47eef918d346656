package huffpack

import (
	"bytes"
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	table, err := Count([]byte("abracadabra"))
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}

	expect := map[byte]uint32{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	for symbol, freq := range table {
		if freq != expect[byte(symbol)] {
			t.Errorf("symbol %q: expected %d, got %d", byte(symbol), expect[byte(symbol)], freq)
		}
	}
	if n := table.Distinct(); n != 5 {
		t.Errorf("expected 5 distinct symbols, got %d", n)
	}
	if n := table.Total(); n != 11 {
		t.Errorf("expected total 11, got %d", n)
	}

	expectSymbols := []byte("abcdr")
	actualSymbols := make([]byte, 0, 5)
	for _, symbol := range table.Symbols() {
		actualSymbols = append(actualSymbols, byte(symbol))
	}
	if !bytes.Equal(expectSymbols, actualSymbols) {
		t.Errorf("wrong symbols:\n\texpect: %q\n\tactual: %q", expectSymbols, actualSymbols)
	}
}

func TestCount_Empty(t *testing.T) {
	table, err := Count(nil)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if table != (FrequencyTable{}) {
		t.Errorf("expected an empty table, got %v", table)
	}
	if n := len(table.Symbols()); n != 0 {
		t.Errorf("expected no symbols, got %d", n)
	}
}

func TestFrequencyTable_Dump(t *testing.T) {
	table, _ := Count([]byte("aaabb"))

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\t97: 3\n",
		"\t98: 2\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
