package download

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ccollins476ad/imgfetch/fileutil"
	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

// Store saves fetched images to a destination directory, skipping content it
// has already saved during its lifetime. A Store is scoped to one run and is
// not safe for concurrent use.
type Store struct {
	destDir string // constant

	hc *http.Client

	seen  map[string]struct{} // Content hashes already saved.
	saved []string            // Filenames written, in order.
}

func NewStore(destDir string) *Store {
	return &Store{
		destDir: destDir,
		hc:      &http.Client{},
		seen:    map[string]struct{}{},
	}
}

// HTTPClient returns the store's http client.
func (s *Store) HTTPClient() *http.Client {
	return s.hc
}

// DestDir returns the directory the store writes to.
func (s *Store) DestDir() string {
	return s.destDir
}

// Saved returns the filenames written so far, relative to the destination
// directory, in the order they were written.
func (s *Store) Saved() []string {
	return append([]string(nil), s.saved...)
}

// SaveFile writes b to relPath under the destination directory, creating or
// truncating the file.
func (s *Store) SaveFile(relPath string, b []byte) error {
	destPath := filepath.Join(s.destDir, relPath)
	if fileutil.FileExists(destPath) {
		log.Warnf("overwriting existing file: %s", destPath)
	}
	log.Debugf("writing %s (%s)", destPath, humanize.Bytes(uint64(len(b))))
	return os.WriteFile(destPath, b, 0644)
}

// Save persists content fetched from url=u unless identical content was
// already saved by this store. The hash is recorded before the write is
// attempted, so a failed write is not retried for the same content.
func (s *Store) Save(u string, c *Content) Result {
	hash := ContentHash(c.Body)
	if s.see(hash) {
		log.Debugf("skipping duplicate content: url=%s sha256=%s", u, hash)
		return Result{Kind: KindDuplicate, URL: u}
	}

	filename, fallback, err := filenameFor(u, c.Body)
	if err != nil {
		return Result{Kind: KindUnexpected, URL: u, Err: err}
	}

	if fallback && c.ContentType != "image/jpeg" {
		log.Warnf("fallback name %s has a .jpg extension but content_type=%s", filename, c.ContentType)
	}

	err = s.SaveFile(filename, c.Body)
	if err != nil {
		return Result{
			Kind: KindWrite,
			URL:  u,
			Err:  fmt.Errorf("failed to save http response: filename=%s err=%w", filename, err),
		}
	}
	s.saved = append(s.saved, filename)

	return Result{
		Kind:     KindSaved,
		URL:      u,
		Filename: filename,
		Path:     filepath.Join(s.destDir, filename),
		Size:     len(c.Body),
	}
}

// see returns true if the store has already recorded the given content hash.
// Otherwise, it records the hash and returns false.
func (s *Store) see(hash string) bool {
	_, ok := s.seen[hash]
	if ok {
		return true
	}

	s.seen[hash] = struct{}{}
	return false
}
