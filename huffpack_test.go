package huffpack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"sync"
	"testing"
)

func TestCompress_aaabb(t *testing.T) {
	artifact, err := Compress([]byte("aaabb"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if !bytes.Equal(aaabbArtifact, artifact) {
		t.Errorf("wrong artifact:\n\texpect: %#v\n\tactual: %#v", aaabbArtifact, artifact)
	}

	out, err := Decompress(artifact)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if string(out) != "aaabb" {
		t.Errorf("wrong output: %q", out)
	}
}

func TestCompress_Empty(t *testing.T) {
	artifact, err := Compress(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if artifact != nil {
		t.Errorf("expected no artifact, got %#v", artifact)
	}

	var buf bytes.Buffer
	if _, err := CompressTo(&buf, []byte{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing written, got %d bytes", buf.Len())
	}
}

func TestCompress_SingleSymbol(t *testing.T) {
	const length = 1000
	input := bytes.Repeat([]byte{'q'}, length)

	artifact, err := Compress(input)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	// 1 count byte + 1 entry + 8 length bytes + 125 payload bytes
	if len(artifact) != 1+5+8+length/8 {
		t.Errorf("expected %d bytes, got %d", 1+5+8+length/8, len(artifact))
	}
	if bits := binary.BigEndian.Uint64(artifact[6:14]); bits != length {
		t.Errorf("expected %d payload bits, got %d", length, bits)
	}

	out, err := Decompress(artifact)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(input, out) {
		t.Errorf("wrong output: got %d bytes", len(out))
	}
}

func TestCompress_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))
	for iteration := 0; iteration < iterations; iteration++ {
		input := make([]byte, 1+rng.Intn(4096))
		alphabet := 1 + rng.Intn(NumSymbols)
		for i := range input {
			// Squaring skews the distribution toward low symbols.
			x := rng.Intn(alphabet)
			input[i] = byte(x * x / alphabet)
		}

		artifact, err := Compress(input)
		if err != nil {
			t.Fatalf("iteration %d: Compress failed: %v", iteration, err)
		}
		out, err := Decompress(artifact)
		if err != nil {
			t.Fatalf("iteration %d: Decompress failed: %v", iteration, err)
		}
		if !bytes.Equal(input, out) {
			t.Errorf("iteration %d: round trip mismatch", iteration)
		}
	}
}

func TestCompressTo_DecompressFrom(t *testing.T) {
	input := []byte("she sells sea shells by the sea shore")

	var buf bytes.Buffer
	n, err := CompressTo(&buf, input)
	if err != nil {
		t.Fatalf("CompressTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
	}

	out, err := DecompressFrom(&buf)
	if err != nil {
		t.Fatalf("DecompressFrom failed: %v", err)
	}
	if !bytes.Equal(input, out) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", input, out)
	}
}

func TestCompress_Concurrent(t *testing.T) {
	inputs := [][]byte{
		[]byte("aaabb"),
		[]byte("abracadabra"),
		bytes.Repeat([]byte("0123456789"), 300),
		[]byte{0x00},
	}

	var wg sync.WaitGroup
	errs := make(chan error, 4*len(inputs))
	for round := 0; round < 4; round++ {
		for _, input := range inputs {
			wg.Add(1)
			go func(input []byte) {
				defer wg.Done()
				artifact, err := Compress(input)
				if err != nil {
					errs <- err
					return
				}
				out, err := Decompress(artifact)
				if err != nil {
					errs <- err
					return
				}
				if !bytes.Equal(input, out) {
					errs <- errors.New("round trip mismatch")
				}
			}(input)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestDecompress_Malformed(t *testing.T) {
	withCount3 := append([]byte{0x03}, aaabbArtifact[1:]...)

	// Valid container framing, but 6 payload bits where the table implies 5.
	wrongLength := append([]byte(nil), aaabbArtifact...)
	wrongLength[18] = 0x06

	// Valid framing and length, but the bits decode to "aaaba".
	wrongCounts := append([]byte(nil), aaabbArtifact...)
	wrongCounts[19] = 0xe8

	// Valid framing and counts, but the stream ends inside a code.
	midCode, err := Compress([]byte("aaaabbc"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	type testRow struct {
		name string
		data []byte
	}

	testData := [...]testRow{
		{name: "empty", data: nil},
		{name: "count-exceeds-entries", data: withCount3},
		{name: "length-mismatch", data: wrongLength},
		{name: "counts-mismatch", data: wrongCounts},
		{name: "truncated", data: midCode[:len(midCode)-1]},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			out, err := Decompress(row.data)
			if !errors.Is(err, ErrMalformedStream) {
				t.Errorf("expected ErrMalformedStream, got %v", err)
			}
			if out != nil {
				t.Errorf("expected no output, got %q", out)
			}
		})
	}
}
