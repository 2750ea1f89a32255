package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ccollins476ad/imgfetch/download"
	"github.com/ccollins476ad/imgfetch/fileutil"
	log "github.com/sirupsen/logrus"
)

func printFatalError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func main() {
	cfg, err := parseArgs()
	if err != nil {
		printFatalError(err)
		flag.Usage()
		os.Exit(1)
	}

	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	writeWelcome(os.Stdout)

	urls, err := collectURLs(cfg, os.Stdin, os.Stdout)
	if err != nil {
		printFatalError(err)
		os.Exit(3)
	}

	if len(urls) == 0 {
		fmt.Println("✗ No URLs provided. Exiting.")
		return
	}

	err = fileutil.EnsureDir(destDir)
	if err != nil {
		printFatalError(err)
		os.Exit(2)
	}

	// An interrupt aborts the request in flight. Remaining urls fail fast.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := download.NewStore(destDir)
	results := processURLs(ctx, s, urls, os.Stdout)

	if cfg.Gallery {
		path, err := writeGallery(s)
		if err != nil {
			log.WithError(err).Errorf("failed to write gallery")
		} else if path != "" {
			fmt.Printf("✓ Gallery written to: %s\n", path)
		}
	}

	writeSummary(os.Stdout, summarize(results))
}
