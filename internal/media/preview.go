package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/asadc0de/husnainatelier/internal/editor"
)

const (
	previewMaxWidth = 320
	previewQuality  = 80
)

// DataURLPreviewer builds the editor's slot preview: the staged file decoded,
// downscaled, and re-encoded as a JPEG data URL small enough to echo back in
// state responses.
type DataURLPreviewer struct{}

func (DataURLPreviewer) PreviewURL(file editor.StagedFile) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(file.Data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > previewMaxWidth {
		newH := h * previewMaxWidth / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, previewMaxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: previewQuality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
