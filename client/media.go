package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// Upload sends one file to /upload. slug may be empty ("misc" server side).
func (c *Client) Upload(ctx context.Context, section, slug, filename, contentType string, r io.Reader) (UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("section", section); err != nil {
		return UploadResult{}, err
	}
	if slug != "" {
		if err := mw.WriteField("slug", slug); err != nil {
			return UploadResult{}, err
		}
	}

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return UploadResult{}, fmt.Errorf("client: read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return UploadResult{}, err
	}

	var out UploadResult
	err = c.do(ctx, http.MethodPost, "/upload", &buf, mw.FormDataContentType(), &out)
	return out, err
}

// DeleteMedia removes the object behind a public media URL and returns its key.
func (c *Client) DeleteMedia(ctx context.Context, mediaURL string) (string, error) {
	var out struct {
		Key string `json:"key"`
	}
	err := c.doJSON(ctx, http.MethodDelete, "/media", map[string]string{"url": mediaURL}, &out)
	return out.Key, err
}
