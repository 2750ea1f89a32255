package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGallery(t *testing.T) {
	page, err := BuildGallery("Fetched images", []string{"cat.png", "image_0123456789ab.jpg"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>Fetched images</title>")
	assert.Contains(t, page, `<img src="cat.png" alt="cat.png"`)
	assert.Contains(t, page, `<img src="image_0123456789ab.jpg"`)
	assert.Equal(t, 2, strings.Count(page, "<img "))
}

func TestBuildGallery_Escapes(t *testing.T) {
	page, err := BuildGallery("<x>", []string{`a"b<c>.png`})
	require.NoError(t, err)

	assert.NotContains(t, page, `a"b<c>.png`)
	assert.Contains(t, page, "&lt;x&gt;")
	assert.Contains(t, page, "a&#34;b&lt;c&gt;.png")
}
