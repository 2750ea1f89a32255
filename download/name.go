package download

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/flytam/filenamify"
)

const (
	fallbackPrefix  = "image_"
	fallbackExt     = ".jpg"
	fallbackHashLen = 12

	// maxFilenameLen is the common filesystem limit on a single name.
	maxFilenameLen = 255
)

// ContentHash returns the hex encoded sha256 digest of b.
func ContentHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// FallbackFilename returns the hash derived name used when a url does not
// yield a usable filename. The extension is always .jpg, whatever the image
// type.
func FallbackFilename(b []byte) string {
	return fallbackPrefix + ContentHash(b)[:fallbackHashLen] + fallbackExt
}

// urlBasename returns the final segment of the url's path, still percent
// encoded. It returns "" if the url does not parse or its path ends in a
// slash.
func urlBasename(u string) string {
	pu, err := url.Parse(u)
	if err != nil {
		return ""
	}
	p := pu.EscapedPath()
	return p[strings.LastIndex(p, "/")+1:]
}

// hasExtension reports whether name contains a dot and is not made of dots
// only.
func hasExtension(name string) bool {
	return strings.Contains(name, ".") && strings.Trim(name, ".") != ""
}

// URLToFilename returns the local filename under which the content b fetched
// from url=u is saved. It prefers the last segment of the url path and falls
// back to FallbackFilename when that segment is empty or has no extension.
func URLToFilename(u string, b []byte) (string, error) {
	name, _, err := filenameFor(u, b)
	return name, err
}

// filenameFor implements URLToFilename. The returned bool is true if the
// fallback name was used.
func filenameFor(u string, b []byte) (string, bool, error) {
	base := urlBasename(u)
	if base == "" || !strings.Contains(base, ".") {
		return FallbackFilename(b), true, nil
	}

	name, err := filenamify.Filenamify(base, filenamify.Options{
		Replacement: "_",
		MaxLength:   maxFilenameLen,
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to convert url to filename: url=%s err=%w", u, err)
	}
	if !hasExtension(name) {
		// Sanitizing removed the extension.
		return FallbackFilename(b), true, nil
	}

	return name, false, nil
}
