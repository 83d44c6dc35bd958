package catalog

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/internal/apperrors"
)

// UploadedFile is a stored blob and its public URL.
type UploadedFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var (
	cvExtensions    = map[string]bool{".pdf": true, ".doc": true, ".docx": true}
	imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true, ".avif": true}

	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// sanitizeFileName keeps the base name and replaces anything outside
// [A-Za-z0-9._-] with an underscore.
func sanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.Trim(unsafeChars.ReplaceAllString(name, "_"), "_")
	if name == "" || name == "." {
		return "file"
	}
	return name
}

// upload stores r under "<unix-millis>_<sanitized name>".
func (e *env) upload(ctx context.Context, op, bucket, fileName, contentType string, r io.Reader, allowed map[string]bool) (UploadedFile, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowed[ext] {
		return UploadedFile{}, apperrors.Validation(op, fmt.Sprintf("file type %q is not allowed", ext), nil)
	}
	key := fmt.Sprintf("%d_%s", e.now().UnixMilli(), sanitizeFileName(fileName))
	u, err := e.blobs.Upload(ctx, bucket, key, r, contentType)
	if err != nil {
		return UploadedFile{}, apperrors.WithOp(op, err)
	}
	e.logger.WithFields(logrus.Fields{"bucket": bucket, "name": key}).Info("File uploaded")
	return UploadedFile{Name: key, URL: u}, nil
}

// blobKey is the trailing path segment of a public blob URL.
func blobKey(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		if key, err := url.PathUnescape(path.Base(u.Path)); err == nil {
			return key
		}
		return path.Base(u.Path)
	}
	if i := strings.LastIndex(rawURL, "/"); i >= 0 {
		return rawURL[i+1:]
	}
	return rawURL
}

// ownedBlobKey returns the blob key when rawURL points into bucket.
func ownedBlobKey(rawURL, bucket string) (string, bool) {
	if rawURL == "" || !strings.Contains(rawURL, "/"+bucket+"/") {
		return "", false
	}
	key := blobKey(rawURL)
	return key, key != "" && key != "/" && key != "."
}

// removeBlob deletes a blob without failing the caller.
func (e *env) removeBlob(ctx context.Context, bucket, key string) {
	if err := e.blobs.Remove(ctx, bucket, key); err != nil {
		e.logger.WithFields(logrus.Fields{"bucket": bucket, "name": key, "error": err.Error()}).Warn("Blob removal failed")
	}
}
