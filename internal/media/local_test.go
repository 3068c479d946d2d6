package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPut(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/uploads/")

	res, err := l.Put(context.Background(), strings.NewReader("jpeg-bytes"), PutInput{
		Filename:    "gown.jpg",
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(res.Key, ".jpg"))
	assert.Equal(t, "/uploads/"+res.Key, res.URL)

	b, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(b))
}

func TestLocalPutDistinctKeysForSameFilename(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/uploads")

	a, err := l.Put(context.Background(), strings.NewReader("one"), PutInput{Filename: "gown.jpg"})
	require.NoError(t, err)
	b, err := l.Put(context.Background(), strings.NewReader("two"), PutInput{Filename: "gown.jpg"})
	require.NoError(t, err)

	assert.NotEqual(t, a.Key, b.Key)
}

func TestImageExt(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        string
	}{
		{"known extension wins", "gown.PNG", "image/jpeg", ".png"},
		{"content type fallback", "upload", "image/png", ".png"},
		{"foreign extension replaced by content type", "gown.heic", "image/jpeg", ".jpg"},
		{"nothing recognizable", "upload", "application/octet-stream", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := imageExt(PutInput{Filename: tt.filename, ContentType: tt.contentType})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalDeleteStripsPathSeparators(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/uploads")

	res, err := l.Put(context.Background(), strings.NewReader("x"), PutInput{Filename: "a.png"})
	require.NoError(t, err)

	require.NoError(t, l.Delete(context.Background(), "../../"+res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}
