package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestCLI(stdin string) (*cli, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &cli{stdin: strings.NewReader(stdin), stdout: &stdout, stderr: &stderr}, &stdout, &stderr
}

func TestCLI_CompressDecompressRoundTrip(t *testing.T) {
	text := strings.Repeat("command line round trip, ", 20)

	c, compressed, _ := newTestCLI(text)
	if err := c.main([]string{"compress"}); err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	if compressed.Len() >= len(text) {
		t.Fatalf("expected compression, got %d bytes", compressed.Len())
	}

	c, decompressed, _ := newTestCLI(compressed.String())
	if err := c.main([]string{"decompress", "-v"}); err != nil {
		t.Fatalf("decompress failed: %v", err)
	}
	if decompressed.String() != text {
		t.Fatal("round trip mismatch")
	}
}

func TestCLI_FilesAndMaxOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	packed := filepath.Join(dir, "in.lzu")
	if err := os.WriteFile(in, []byte(strings.Repeat("A", 64)), 0o644); err != nil {
		t.Fatal(err)
	}

	c, _, _ := newTestCLI("")
	if err := c.main([]string{"compress", "-o", packed, in}); err != nil {
		t.Fatalf("compress failed: %v", err)
	}

	c, _, _ = newTestCLI("")
	if err := c.main([]string{"decompress", "-max-output", "10", packed}); err == nil {
		t.Fatal("expected output limit error")
	}
}

func TestCLI_Explain(t *testing.T) {
	c, stdout, _ := newTestCLI("abcd\xc4\x04")
	if err := c.main([]string{"explain"}); err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "pointer l=4 d=4 OS=8") {
		t.Fatalf("unexpected explain output:\n%s", stdout.String())
	}
}

func TestCLI_StatsWithSVG(t *testing.T) {
	dir := t.TempDir()
	lengths := filepath.Join(dir, "lengths.svg")
	distances := filepath.Join(dir, "distances.svg")

	c, stdout, _ := newTestCLI(strings.Repeat("statistics are fun; ", 40))
	if err := c.main([]string{"stats", "-svg", lengths, "-distance-svg", distances}); err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "pointers:") {
		t.Fatalf("unexpected stats output:\n%s", stdout.String())
	}

	for _, path := range []string{lengths, distances} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("svg not written: %v", err)
		}
		if !bytes.Contains(data, []byte("<svg")) {
			t.Fatalf("%s has no svg element", path)
		}
	}
}

func TestCLI_StatsWithoutPointersSkipsSVG(t *testing.T) {
	svg := filepath.Join(t.TempDir(), "lengths.svg")

	c, stdout, _ := newTestCLI("no repeats")
	if err := c.main([]string{"stats", "-svg", svg}); err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "pointers:   0") {
		t.Fatalf("unexpected stats output:\n%s", stdout.String())
	}
	if _, err := os.Stat(svg); !os.IsNotExist(err) {
		t.Fatalf("svg file should not be created, stat err=%v", err)
	}
}

func TestCLI_UsageErrors(t *testing.T) {
	tests := [][]string{
		nil,
		{"unknown"},
		{"compress", "a", "b"},
		{"compress", "-no-such-flag"},
	}

	for _, args := range tests {
		c, _, stderr := newTestCLI("")
		if err := c.main(args); !errors.Is(err, errUsage) {
			t.Errorf("args %q: expected usage error, got %v", args, err)
		}
		if stderr.Len() == 0 {
			t.Errorf("args %q: expected a message on stderr", args)
		}
	}

	c, _, stderr := newTestCLI("")
	if err := c.main([]string{"help"}); err != nil {
		t.Fatalf("help failed: %v", err)
	}
	if !strings.Contains(stderr.String(), "decompress") {
		t.Fatal("help should list commands")
	}
}
