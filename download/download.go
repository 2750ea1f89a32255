package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

// Timeout bounds a single fetch, including reading the response body.
const Timeout = 10 * time.Second

// Content is a fetched response body and the media type its response
// declared.
type Content struct {
	Body        []byte
	ContentType string
}

// IsImageType reports whether a Content-Type header value declares an image.
func IsImageType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// GetResponse performs an http GET with url=u using the supplied client. It
// returns an error for any non-2xx status. The caller must close the body of
// the returned response.
func GetResponse(ctx context.Context, hc *http.Client, u string) (*http.Response, error) {
	log.Debugf("get: %s", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	rsp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if rsp.StatusCode < 200 || rsp.StatusCode >= 300 {
		rsp.Body.Close()
		return nil, fmt.Errorf("error status: %s", rsp.Status)
	}

	return rsp, nil
}

// Fetch retrieves the image at url=u. Any failure to obtain a 2xx response
// is reported as a *TransportError. A response whose Content-Type is not an
// image type yields an error wrapping ErrNotImage; its body is discarded
// unread.
func Fetch(ctx context.Context, hc *http.Client, u string) (*Content, error) {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	rsp, err := GetResponse(ctx, hc, u)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	defer rsp.Body.Close()

	ct := rsp.Header.Get("Content-Type")
	if !IsImageType(ct) {
		return nil, fmt.Errorf("%w: url=%s content_type=%q", ErrNotImage, u, ct)
	}

	b, err := io.ReadAll(rsp.Body)
	if err != nil {
		return nil, &TransportError{URL: u, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	log.Debugf("fetched %s: content_type=%s size=%s", u, ct, humanize.Bytes(uint64(len(b))))

	return &Content{
		Body:        b,
		ContentType: ct,
	}, nil
}
