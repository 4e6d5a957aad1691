package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/smsaad/huffpack/engine"
)

var Commands = [...]string{"compress", "decompress", "help"}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "compress":
		runCompress(os.Args[2:])
	case "decompress":
		runDecompress(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		color.Red("unknown command %q", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Valid commands include:\n\t%s\n", strings.Join(Commands[:], ", "))
	fmt.Fprintf(os.Stderr, "Run %s <command> -help for the command's flags\n", os.Args[0])
}

func runCompress(args []string) {
	fs := flag.NewFlagSet("compress", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s compress [OPTIONS] <file(s)>\n", os.Args[0])
		fs.PrintDefaults()
	}
	algorithm := fs.String("algorithm", "huffman", fmt.Sprintf("Which algorithm to use, choices include:\n\t%s", strings.Join(engine.Engines[:], ", ")))
	bundle := fs.Bool("bundle", false, "Package both artifacts of each file into a single zip as well")
	deleteAfter := fs.Bool("delete", false, "Delete input files after compression")
	fs.Parse(args)

	files := fs.Args()
	if len(files) == 0 {
		color.Red("no file provided for compression")
		os.Exit(1)
	}
	for _, file := range files {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			color.Red("could not open the provided file %s", file)
			os.Exit(1)
		}
	}

	results, err := engine.CompressFiles(*algorithm, files, *bundle)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	for _, res := range results {
		color.Green("compressed %s", res.Input)
		fmt.Printf("Original size (in bytes): %v\n", res.RawSize)
		fmt.Printf("Compressed size (in bytes): %v\n", res.Packed)
		fmt.Printf("Compression ratio: %.2f%%\n", res.Ratio())
		fmt.Printf("Artifacts: %s, %s\n", res.Stream, res.Table)
		if res.Bundle != "" {
			fmt.Printf("Bundle: %s\n", res.Bundle)
		}
	}
	if *deleteAfter {
		for _, file := range files {
			if err := os.Remove(file); err != nil {
				color.Red("%v", err)
				os.Exit(1)
			}
		}
	}
}

func runDecompress(args []string) {
	fs := flag.NewFlagSet("decompress", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s decompress [OPTIONS] <file%s>\n", os.Args[0], engine.StreamExt)
		fs.PrintDefaults()
	}
	algorithm := fs.String("algorithm", "huffman", fmt.Sprintf("Which algorithm to use, choices include:\n\t%s", strings.Join(engine.Engines[:], ", ")))
	codes := fs.String("codes", "", "Path to the code table sidecar (default <stream>"+engine.TableSuffix+")")
	out := fs.String("out", "", "Path for the reconstructed text (default strips "+engine.StreamExt+")")
	fs.Parse(args)

	if fs.NArg() != 1 {
		color.Red("provide exactly one packed bitstream file")
		fs.Usage()
		os.Exit(1)
	}
	streamPath := fs.Arg(0)
	tablePath := *codes
	if tablePath == "" {
		tablePath = streamPath + engine.TableSuffix
	}
	outPath := *out
	if outPath == "" {
		if strings.HasSuffix(streamPath, engine.StreamExt) {
			outPath = strings.TrimSuffix(streamPath, engine.StreamExt)
		} else {
			outPath = streamPath + ".txt"
		}
		outPath += ".decompressed"
	}

	if err := engine.DecompressFile(*algorithm, streamPath, tablePath, outPath); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	color.Green("decompressed %s -> %s", streamPath, outPath)
}
