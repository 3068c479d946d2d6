package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/asadc0de/husnainatelier/internal/shared/apperr"
)

// Cloudinary uploads to a hosted media endpoint: an unauthenticated
// multipart POST carrying the file and a fixed upload preset, answered with
// a JSON body whose secure_url field is the hosted image. Any non-2xx
// response is an upload failure; a transport error is a network failure.
// Neither is retried.
type Cloudinary struct {
	client    *resty.Client
	UploadURL string
	Preset    string
}

type CloudinaryConfig struct {
	UploadURL string
	Preset    string
	Timeout   time.Duration
}

type cloudinaryResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewCloudinary(cfg CloudinaryConfig) *Cloudinary {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Cloudinary{
		client:    resty.New().SetTimeout(timeout),
		UploadURL: cfg.UploadURL,
		Preset:    cfg.Preset,
	}
}

func (c *Cloudinary) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	var out cloudinaryResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", in.Filename, r).
		SetFormData(map[string]string{"upload_preset": c.Preset}).
		SetResult(&out).
		SetError(&out).
		Post(c.UploadURL)
	if err != nil {
		return PutResult{}, apperr.NetworkErr("Could not reach the image host.", err)
	}
	if resp.IsError() {
		msg := out.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return PutResult{}, apperr.UploadFailedErr("Image upload failed.",
			fmt.Errorf("media host: %s: %s", resp.Status(), msg))
	}
	if out.SecureURL == "" {
		return PutResult{}, apperr.UploadFailedErr("Image upload failed.",
			fmt.Errorf("media host: response missing secure_url"))
	}
	return PutResult{Key: out.PublicID, URL: out.SecureURL}, nil
}

// Delete is a no-op: unsigned preset uploads cannot be deleted without API
// credentials, so abandoned images are left to the host's cleanup rules.
func (c *Cloudinary) Delete(ctx context.Context, key string) error {
	_ = ctx
	_ = key
	return nil
}

func (c *Cloudinary) String() string { return fmt.Sprintf("cloudinary(%s)", c.UploadURL) }
