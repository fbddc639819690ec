package lzutf8

import (
	"bytes"
	"testing"
)

func TestAPIContract_PlainTextPassesThrough(t *testing.T) {
	inputs := []string{
		"",
		"plain ASCII text with no back-references",
		"Съешь же ещё этих мягких французских булок",
		"日本語のテキスト 😀 naïve café",
		"line one\nline two\ttabbed\r\n",
	}

	for _, in := range inputs {
		out, err := DecompressString(in)
		if err != nil {
			t.Fatalf("DecompressString(%q) failed: %v", in, err)
		}
		if out != in {
			t.Fatalf("plain text altered: got %q want %q", out, in)
		}
	}
}

func TestAPIContract_DecompressIsIdempotentOnPlainText(t *testing.T) {
	src := wordText(10000)

	once, err := Decompress(src, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}

	twice, err := Decompress(once, nil)
	if err != nil {
		t.Fatalf("second Decompress failed: %v", err)
	}

	if !bytes.Equal(once, src) || !bytes.Equal(twice, src) {
		t.Fatal("repeated decompression of plain text should be a no-op")
	}
}

func TestAPIContract_ConcatenatedLiteralTail(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract "), 64)
	cmp := Compress(src)

	// Literal UTF-8 appended after a stream decodes as itself.
	payload := append(append([]byte{}, cmp...), []byte("tail ✓")...)
	out, err := Decompress(payload, nil)
	if err != nil {
		t.Fatalf("Decompress with trailing text failed: %v", err)
	}

	want := append(append([]byte{}, src...), []byte("tail ✓")...)
	if !bytes.Equal(out, want) {
		t.Fatal("decoded output mismatch for trailing-text input")
	}
}

func TestAPIContract_StringAndByteFormsAgree(t *testing.T) {
	src := string(wordText(3000))

	if got, want := CompressString(src), string(Compress([]byte(src))); got != want {
		t.Fatal("CompressString and Compress disagree")
	}

	out, err := DecompressString(CompressString(src))
	if err != nil {
		t.Fatalf("DecompressString failed: %v", err)
	}
	if out != src {
		t.Fatal("string round trip mismatch")
	}
}
