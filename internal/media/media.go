// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package media handles image uploads for the landing document: validation,
// filename generation, local asset storage with thumbnail generation, and
// an optional S3 mirror.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pagesmith/internal/storage"
)

const (
	// MaxUploadSize caps a single image upload at 10 MB.
	MaxUploadSize = 10 << 20

	// thumbnail bounding box for editor previews.
	thumbWidth  = 320
	thumbHeight = 320

	// saveImagesConcurrency bounds the parallel batch save workers.
	saveImagesConcurrency = 4
)

// Store persists uploaded images to a local assets directory and, when
// configured, mirrors them to S3.
type Store struct {
	dir string
	s3  *storage.Client // may be nil
}

// NewStore creates a media store rooted at dir. The directory is created
// if it does not exist. s3 may be nil.
func NewStore(dir string, s3 *storage.Client) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create assets dir: %w", err)
	}
	return &Store{dir: dir, s3: s3}, nil
}

// Dir returns the local assets directory.
func (s *Store) Dir() string { return s.dir }

// ValidateUpload checks the content type and size of an incoming image.
func ValidateUpload(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("unsupported content type %q: only images are accepted", contentType)
	}
	if size > MaxUploadSize {
		return fmt.Errorf("file too large: %d bytes exceeds the %d byte limit", size, MaxUploadSize)
	}
	return nil
}

// Filename generates a collision-resistant name for an upload, preserving
// the original extension.
func Filename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("upload-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

// DecodeDataURL parses a base64 data URL ("data:image/png;base64,....")
// and returns the raw bytes and content type.
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URL")
	}
	contentType, _, _ := strings.Cut(meta, ";")
	if !strings.Contains(meta, "base64") {
		return nil, "", fmt.Errorf("data URL is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode data URL: %w", err)
	}
	return data, contentType, nil
}

// SaveUpload writes an image to the assets directory, generates a
// thumbnail alongside it, and mirrors the original to S3 when configured.
// Returns the public URL path of the saved file.
func (s *Store) SaveUpload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if err := ValidateUpload(contentType, int64(len(data))); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	// Thumbnail generation is best effort; SVG and exotic formats that the
	// decoder rejects still get served full size.
	if err := s.writeThumbnail(filename, data); err != nil {
		slog.Warn("thumbnail generation failed", "file", filename, "error", err)
	}

	if s.s3 != nil {
		if err := s.s3.Upload(ctx, filename, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
			slog.Warn("s3 mirror failed", "file", filename, "error", err)
		}
	}

	return "/assets/" + filename, nil
}

// writeThumbnail decodes the image and saves a bounded-fit thumbnail next
// to the original as thumb_<name>.
func (s *Store) writeThumbnail(filename string, data []byte) error {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	thumb := imaging.Fit(img, thumbWidth, thumbHeight, imaging.Lanczos)
	thumbPath := filepath.Join(s.dir, "thumb_"+filename)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return fmt.Errorf("save thumbnail: %w", err)
	}
	return nil
}

// ImageInput is one image in a batch save request, referenced by the
// component and field it belongs to.
type ImageInput struct {
	ComponentID string `json:"componentId"`
	Field       string `json:"field"`
	Filename    string `json:"filename"`
	DataURL     string `json:"dataUrl"`
}

// SaveResult reports the outcome for one image in a batch.
type SaveResult struct {
	ComponentID string `json:"componentId"`
	Field       string `json:"field"`
	URL         string `json:"url,omitempty"`
	Error       string `json:"error,omitempty"`
}

// SaveImages stores a batch of data-URL images in parallel. Individual
// failures are reported per image and never abort the rest of the batch.
func (s *Store) SaveImages(ctx context.Context, images []ImageInput) []SaveResult {
	results := make([]SaveResult, len(images))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(saveImagesConcurrency)

	for i, img := range images {
		g.Go(func() error {
			res := SaveResult{ComponentID: img.ComponentID, Field: img.Field}

			data, contentType, err := DecodeDataURL(img.DataURL)
			if err == nil {
				var url string
				url, err = s.SaveUpload(ctx, Filename(img.Filename), contentType, data)
				res.URL = url
			}
			if err != nil {
				res.Error = err.Error()
				slog.Warn("batch image save failed", "component", img.ComponentID, "error", err)
			}

			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; failures are per-result.
	_ = g.Wait()
	return results
}
