package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"mvdan.cc/xurls/v2"
)

const urlPrompt = "Enter one or more image URLs (comma separated): "

// splitURLs splits a comma separated list of urls. Entries are trimmed and
// blank entries are discarded.
func splitURLs(line string) []string {
	var urls []string
	for _, u := range strings.Split(line, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// promptURLs writes a prompt to w, then reads a single line of comma
// separated urls from r.
func promptURLs(r io.Reader, w io.Writer) ([]string, error) {
	fmt.Fprint(w, urlPrompt)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read urls: %w", err)
	}

	return splitURLs(line), nil
}

// extractURLs returns every url found in free-form text, in order of
// appearance.
func extractURLs(text string) []string {
	rx := xurls.Strict()
	return rx.FindAllString(text, -1)
}

// readURLFile extracts urls from the text file with the given name.
func readURLFile(filename string) ([]string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	urls := extractURLs(string(b))
	log.Debugf("found %d urls in %s", len(urls), filename)

	return urls, nil
}

// collectURLs returns the urls to fetch: from cfg.InputFile if set, otherwise
// from a prompt on the given reader/writer.
func collectURLs(cfg *Config, r io.Reader, w io.Writer) ([]string, error) {
	if cfg.InputFile != "" {
		return readURLFile(cfg.InputFile)
	}
	return promptURLs(r, w)
}
