package engine

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smsaad/huffpack/compressor/huffman"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	return path
}

func TestCompressDecompressFiles(t *testing.T) {
	content := "abracadabra abracadabra abracadabra"
	input := writeInput(t, "sample.txt", content)

	results, err := CompressFiles("huffman", []string{input}, false)
	if err != nil {
		t.Fatalf("CompressFiles failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	res := results[0]
	if res.Stream != input+StreamExt {
		t.Errorf("stream artifact at %s, want %s", res.Stream, input+StreamExt)
	}
	for _, artifact := range []string{res.Stream, res.Table} {
		if _, err := os.Stat(artifact); err != nil {
			t.Fatalf("artifact %s not written: %v", artifact, err)
		}
	}
	if res.RawSize != len(content) {
		t.Errorf("raw size %d, want %d", res.RawSize, len(content))
	}

	out := filepath.Join(filepath.Dir(input), "restored.txt")
	if err := DecompressFile("huffman", res.Stream, res.Table, out); err != nil {
		t.Fatalf("DecompressFile failed: %v", err)
	}
	restored, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(restored) != content {
		t.Errorf("round trip = %q, want %q", restored, content)
	}
}

func TestCompressFilesBundle(t *testing.T) {
	input := writeInput(t, "sample.txt", "bundle me, bundle me")

	results, err := CompressFiles("huffman", []string{input}, true)
	if err != nil {
		t.Fatalf("CompressFiles failed: %v", err)
	}
	bundle := results[0].Bundle
	if bundle == "" {
		t.Fatal("no bundle path reported")
	}
	zr, err := zip.OpenReader(bundle)
	if err != nil {
		t.Fatalf("opening bundle: %v", err)
	}
	defer zr.Close()
	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		filepath.Base(results[0].Stream),
		filepath.Base(results[0].Table),
	} {
		if !names[want] {
			t.Errorf("bundle is missing entry %s", want)
		}
	}
}

func TestDecompressFileMissingArtifact(t *testing.T) {
	input := writeInput(t, "sample.txt", "some text to pack")
	results, err := CompressFiles("huffman", []string{input}, false)
	if err != nil {
		t.Fatalf("CompressFiles failed: %v", err)
	}
	res := results[0]
	out := filepath.Join(filepath.Dir(input), "restored.txt")

	err = DecompressFile("huffman", res.Stream, res.Table+".gone", out)
	if !errors.Is(err, ErrMissingArtifact) {
		t.Errorf("missing table: got %v, want ErrMissingArtifact", err)
	}
	err = DecompressFile("huffman", res.Stream+".gone", res.Table, out)
	if !errors.Is(err, ErrMissingArtifact) {
		t.Errorf("missing stream: got %v, want ErrMissingArtifact", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output written despite missing artifact")
	}
}

func TestCompressFilesEmptyInput(t *testing.T) {
	input := writeInput(t, "empty.txt", "")
	_, err := CompressFiles("huffman", []string{input}, false)
	if !errors.Is(err, huffman.ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
	if _, err := os.Stat(input + StreamExt); !os.IsNotExist(err) {
		t.Error("artifact written despite empty input")
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	if _, err := CompressFiles("lzss", []string{"whatever"}, false); err == nil {
		t.Error("CompressFiles accepted an unknown algorithm")
	}
	if err := DecompressFile("lzss", "a", "b", "c"); err == nil {
		t.Error("DecompressFile accepted an unknown algorithm")
	}
}
