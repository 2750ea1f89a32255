package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// destDir is the directory fetched images are saved to, relative to the
// working directory.
const destDir = "Fetched_Images"

type Config struct {
	InputFile string // Text file to extract urls from. Empty to prompt on stdin.
	Gallery   bool   // True to write an index.html gallery of saved images.
	Verbose   bool   // True for verbose output.
}

func parseArgs() (*Config, error) {
	verbose := flag.Bool("v", false, "verbose output")
	inputFile := flag.String("i", "", "read image urls from a text `file` instead of prompting")
	gallery := flag.Bool("gallery", false, "write an index.html gallery of the images saved")

	flag.Usage = usage
	flag.Parse()

	if len(flag.Args()) > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", flag.Args()[0])
	}

	return &Config{
		InputFile: *inputFile,
		Gallery:   *gallery,
		Verbose:   *verbose,
	}, nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [option]...\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(flag.CommandLine.Output(), "Fetches images from the web into ./%s.\n", destDir)
	flag.PrintDefaults()
}
