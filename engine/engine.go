// Package engine is the file-level collaborator around the coders: it reads
// raw input, hands it to a registered codec and persists the two resulting
// artifacts (packed bitstream and code table sidecar), or reads both
// artifacts back and writes the reconstructed text.
package engine

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pb "github.com/cheggaaa/pb/v3"

	"github.com/smsaad/huffpack/compressor/huffman"
)

var Engines = [...]string{
	"huffman",
}

// ErrMissingArtifact indicates a decompression was requested without one of
// its two required artifact files.
var ErrMissingArtifact = errors.New("engine: required artifact is missing")

// Artifact naming: the bitstream lands next to the input as <file>.huf and
// the code table as <file>.huf.codes.json.
const (
	StreamExt    = ".huf"
	TableSuffix  = ".codes.json"
	BundleSuffix = ".zip"
)

// Codec turns text into its two persisted artifacts and back. The stream
// and table are independent byte sequences; the engine never inspects them.
type Codec interface {
	Encode(text string) (stream, table []byte, err error)
	Decode(stream, table []byte) (string, error)
}

type huffmanCodec struct{}

func (huffmanCodec) Encode(text string) ([]byte, []byte, error) {
	stream, codes, err := huffman.Encode(text)
	if err != nil {
		return nil, nil, err
	}
	table, err := json.Marshal(codes)
	if err != nil {
		return nil, nil, err
	}
	return stream, table, nil
}

func (huffmanCodec) Decode(stream, table []byte) (string, error) {
	codes, err := huffman.ParseCodeTable(table)
	if err != nil {
		return "", err
	}
	return huffman.Decode(stream, codes)
}

var codecs = map[string]Codec{
	"huffman": huffmanCodec{},
}

func lookupCodec(name string) (Codec, error) {
	codec, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q, choices include: %s", name, strings.Join(Engines[:], ", "))
	}
	return codec, nil
}

// Result reports one compressed file and where its artifacts were written.
type Result struct {
	Input   string
	Stream  string
	Table   string
	Bundle  string
	RawSize int
	Packed  int
}

// Ratio returns the packed size as a percentage of the raw size.
func (r Result) Ratio() float64 {
	return float64(r.Packed) / float64(r.RawSize) * 100
}

// CompressFiles compresses each file with the named algorithm. With bundle
// set, both artifacts of a file are additionally zipped into <file>.huf.zip.
// Each file is an independent operation; the first failure stops the run.
func CompressFiles(algorithm string, files []string, bundle bool) ([]Result, error) {
	codec, err := lookupCodec(algorithm)
	if err != nil {
		return nil, err
	}
	totalBytes := 0
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return nil, err
		}
		totalBytes += int(info.Size())
	}
	bar := pb.New(totalBytes)
	bar.Set(pb.Bytes, true)
	bar.Start()
	defer bar.Finish()

	results := make([]Result, 0, len(files))
	for _, file := range files {
		res, err := compressFile(codec, file, bundle)
		if err != nil {
			return results, fmt.Errorf("compress %s: %w", file, err)
		}
		results = append(results, res)
		bar.Add(res.RawSize)
	}
	return results, nil
}

func compressFile(codec Codec, path string, bundle bool) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	stream, table, err := codec.Encode(string(content))
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Input:   path,
		Stream:  path + StreamExt,
		Table:   path + StreamExt + TableSuffix,
		RawSize: len(content),
		Packed:  len(stream),
	}
	if err := os.WriteFile(res.Stream, stream, 0644); err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(res.Table, table, 0644); err != nil {
		return Result{}, err
	}
	if bundle {
		res.Bundle = res.Stream + BundleSuffix
		if err := writeBundle(res.Bundle, res.Stream, res.Table); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

// writeBundle zips the named artifact files into a single archive, storing
// each under its base name.
func writeBundle(path string, artifacts ...string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(f)
	for _, artifact := range artifacts {
		data, err := os.ReadFile(artifact)
		if err != nil {
			f.Close()
			return err
		}
		entry, err := zw.Create(filepath.Base(artifact))
		if err != nil {
			f.Close()
			return err
		}
		if _, err := entry.Write(data); err != nil {
			f.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DecompressFile reads a packed bitstream and its code table sidecar and
// writes the reconstructed text to outPath. Both artifacts must exist before
// any output is produced.
func DecompressFile(algorithm, streamPath, tablePath, outPath string) error {
	codec, err := lookupCodec(algorithm)
	if err != nil {
		return err
	}
	stream, err := readArtifact(streamPath, "bitstream")
	if err != nil {
		return err
	}
	table, err := readArtifact(tablePath, "code table")
	if err != nil {
		return err
	}
	text, err := codec.Decode(stream, table)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(text), 0644)
}

func readArtifact(path, kind string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s %s", ErrMissingArtifact, kind, path)
		}
		return nil, err
	}
	return data, nil
}
