package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Local keeps slot uploads on disk under BaseDir and serves them from
// URLPrefix. The default driver for development, paired with the mockmedia
// file server. Keys are fresh uuids, so re-uploading the same filename
// never collides.
type Local struct {
	BaseDir   string
	URLPrefix string
}

func NewLocal(baseDir, urlPrefix string) *Local {
	return &Local{BaseDir: baseDir, URLPrefix: urlPrefix}
}

func (l *Local) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	_ = ctx

	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return PutResult{}, err
	}

	key := uuid.NewString() + imageExt(in)
	dst, err := os.OpenFile(filepath.Join(l.BaseDir, key), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return PutResult{}, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return PutResult{}, err
	}

	return PutResult{Key: key, URL: strings.TrimRight(l.URLPrefix, "/") + "/" + key}, nil
}

// Delete only ever touches files directly under BaseDir; a key with path
// separators is reduced to its base name.
func (l *Local) Delete(ctx context.Context, key string) error {
	_ = ctx
	return os.Remove(filepath.Join(l.BaseDir, filepath.Base(key)))
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }

// imageExt picks the stored extension. Slot uploads are images, so an
// unrecognized filename extension falls back to the declared content type
// rather than being carried through verbatim.
func imageExt(in PutInput) string {
	switch ext := strings.ToLower(filepath.Ext(in.Filename)); ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return ext
	}
	switch in.ContentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	}
	return ""
}
