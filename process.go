package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ccollins476ad/imgfetch/download"
	"github.com/ccollins476ad/imgfetch/web"
	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

const galleryFilename = "index.html"

// Summary tallies the results of a batch.
type Summary struct {
	Saved      int
	Duplicates int
	NotImages  int
	Failed     int
	Bytes      uint64 // Total size of the saved images.
}

// processURLs fetches and saves each url in turn, writing one outcome line
// per url to w. A failure on one url never stops the batch. It returns the
// results in the order of urls.
func processURLs(ctx context.Context, s *download.Store, urls []string, w io.Writer) []download.Result {
	results := make([]download.Result, 0, len(urls))

	for _, u := range urls {
		res := processURL(ctx, s, u)
		reportResult(w, res)
		results = append(results, res)
	}

	return results
}

// processURL fetches the image at url=u and hands it to the store. A panic
// while handling the url is reported as an unexpected error.
func processURL(ctx context.Context, s *download.Store, u string) (res download.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = download.Result{
				Kind: download.KindUnexpected,
				URL:  u,
				Err:  fmt.Errorf("panic while processing url: url=%s panic=%v", u, r),
			}
		}
	}()

	log.Debugf("processing url: %s", u)

	c, err := download.Fetch(ctx, s.HTTPClient(), u)
	if err != nil {
		log.WithError(err).Debugf("failed to fetch: url=%s", u)
		return download.Result{
			Kind: download.ClassifyError(err),
			URL:  u,
			Err:  err,
		}
	}

	return s.Save(u, c)
}

// reportResult writes a human-readable line describing res to w.
func reportResult(w io.Writer, res download.Result) {
	switch res.Kind {
	case download.KindSaved:
		fmt.Fprintf(w, "✓ Successfully fetched: %s\n", res.Filename)
		fmt.Fprintf(w, "✓ Saved to: %s\n", res.Path)

	case download.KindNotImage:
		fmt.Fprintf(w, "✗ Skipped (Not an image): %s\n", res.URL)

	case download.KindDuplicate:
		fmt.Fprintf(w, "⚠ Skipped duplicate: %s\n", res.URL)

	case download.KindTransport:
		fmt.Fprintf(w, "✗ Connection error: %v\n", res.Err)

	case download.KindWrite:
		fmt.Fprintf(w, "✗ Failed to save %s: %v\n", res.URL, res.Err)

	default:
		fmt.Fprintf(w, "✗ An error occurred: %v\n", res.Err)
	}
}

func summarize(results []download.Result) Summary {
	var sum Summary
	for _, res := range results {
		switch res.Kind {
		case download.KindSaved:
			sum.Saved++
			sum.Bytes += uint64(res.Size)
		case download.KindDuplicate:
			sum.Duplicates++
		case download.KindNotImage:
			sum.NotImages++
		default:
			sum.Failed++
		}
	}
	return sum
}

// writeWelcome writes the startup banner to w.
func writeWelcome(w io.Writer) {
	fmt.Fprintln(w, "🌍 Welcome to the Ubuntu Image Fetcher")
	fmt.Fprintln(w, "A mindful tool for collecting images from the web")
	fmt.Fprintln(w)
}

// writeSummary writes the end-of-batch summary and completion banner to w.
func writeSummary(w io.Writer, sum Summary) {
	fmt.Fprintf(w, "\nSaved %d image(s) (%s), skipped %d duplicate(s) and %d non-image(s), %d failed.\n",
		sum.Saved, humanize.Bytes(sum.Bytes), sum.Duplicates, sum.NotImages, sum.Failed)
	fmt.Fprintln(w, "✅ Process completed.")
	fmt.Fprintln(w, "🤝 Connection strengthened. Community enriched.")
}

// writeGallery saves an html page displaying every image the store saved. It
// returns the path of the page, or "" if nothing was saved or an image saved
// this run already occupies the gallery's filename.
func writeGallery(s *download.Store) (string, error) {
	filenames := s.Saved()
	if len(filenames) == 0 {
		return "", nil
	}

	for _, f := range filenames {
		if f == galleryFilename {
			log.Warnf("skipping gallery: an image was saved as %s", filepath.Join(s.DestDir(), galleryFilename))
			return "", nil
		}
	}

	page, err := web.BuildGallery("Fetched images", filenames)
	if err != nil {
		return "", fmt.Errorf("failed to build gallery: %w", err)
	}

	err = s.SaveFile(galleryFilename, []byte(page))
	if err != nil {
		return "", err
	}

	return filepath.Join(s.DestDir(), galleryFilename), nil
}
