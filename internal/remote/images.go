package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
)

// ErrMissingFilename indicates an upload without a file name.
var ErrMissingFilename = errors.New("image filename is required")

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type uploadResult struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// UploadImage uploads an image and returns the URL assigned by the backend.
func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	const failMsg = "image upload failed"

	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == "/" {
		return "", ErrMissingFilename
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(name)))
	header.Set("Content-Type", contentType)

	part, err := form.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	size, err := io.Copy(part, file)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}

	c.logger.Debug("uploading image", "name", name, "type", contentType, "size", humanize.Bytes(uint64(size)))

	req, err := c.newRequest(ctx, http.MethodPost, "/api/images", &buf, true)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	res, err := c.do(req)
	if err != nil {
		return "", transportError(failMsg, err)
	}
	if !res.ok() {
		msg, ok := bodyMessage(res.body)
		if !ok {
			msg = failMsg
			if text := strings.TrimSpace(string(res.body)); text != "" && !gjson.Valid(text) {
				msg = text
			}
		}
		c.logger.Warn("image upload rejected", "status", res.status, "error", msg)
		return "", newStatusError(res, msg)
	}

	var data uploadResult
	if err := decode(res.body, uploadResolved, &data); err != nil {
		return "", err
	}
	c.logger.Debug("uploaded image", "id", data.ID, "url", data.URL)
	return data.URL, nil
}
