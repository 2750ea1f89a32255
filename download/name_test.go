package download

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fallbackRegexp = regexp.MustCompile(`^image_[0-9a-f]{12}\.jpg$`)

func TestContentHash(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		ContentHash(nil))
	assert.Len(t, ContentHash(pngBytes), 64)
}

func TestFallbackFilename(t *testing.T) {
	name := FallbackFilename(pngBytes)
	assert.Regexp(t, fallbackRegexp, name)
	assert.Equal(t, "image_"+ContentHash(pngBytes)[:12]+".jpg", name)
}

func TestURLToFilename(t *testing.T) {
	fallback := FallbackFilename(pngBytes)
	longName := strings.Repeat("a", 120) + ".png"

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"path segment", "https://example.com/cat.png", "cat.png"},
		{"nested path", "https://example.com/a/b/dog.jpeg", "dog.jpeg"},
		{"query ignored", "https://example.com/cat.png?size=large#top", "cat.png"},
		{"no scheme", "cat.png", "cat.png"},
		{"trailing slash", "https://example.com/images/", fallback},
		{"no path", "https://example.com", fallback},
		{"root path", "https://example.com/", fallback},
		{"no extension", "https://example.com/images/photo", fallback},
		{"dot only in directory", "https://example.com/v1.2/photo", fallback},
		{"unparseable", "http://[::1", fallback},
		{"long segment", "https://example.com/" + longName, longName},
		{"encoded dot", "https://example.com/photo%2Ejpg", fallback},
		{"encoded slash", "https://example.com/a%2Fb.png", "a%2Fb.png"},
		{"encoded space", "https://example.com/my%20cat.png", "my%20cat.png"},
		{"dot segment", "https://example.com/a/..", fallback},
		{"dots only", "https://example.com/a/...", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := URLToFilename(tt.url, pngBytes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLToFilename_Sanitizes(t *testing.T) {
	got, err := URLToFilename("https://example.com/a:b.png", pngBytes)
	require.NoError(t, err)
	assert.NotContains(t, got, ":")
	assert.True(t, strings.HasSuffix(got, ".png"), "extension lost: %s", got)
}

func TestURLToFilename_Deterministic(t *testing.T) {
	for _, u := range []string{"https://example.com/cat.png", "https://example.com/"} {
		a, err := URLToFilename(u, pngBytes)
		require.NoError(t, err)
		b, err := URLToFilename(u, append([]byte(nil), pngBytes...))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}

	a, _ := URLToFilename("https://example.com/", []byte("one"))
	b, _ := URLToFilename("https://example.com/", []byte("two"))
	assert.NotEqual(t, a, b)
}
