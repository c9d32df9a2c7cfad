// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pagesmith/internal/media"
)

// newMediaHandler builds the upload handlers over a temp assets dir. No
// database involved.
func newMediaHandler(t *testing.T) (*Media, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := media.NewStore(dir, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return NewMedia(store), dir
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// multipartImage builds a multipart body with one image part carrying an
// explicit content type.
func multipartImage(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadReturnsDataURL(t *testing.T) {
	h, dir := newMediaHandler(t)

	img := pngBytes(t)
	body, contentType := multipartImage(t, "image", "logo.png", "image/png", img)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.Upload(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("upload = %d: %s", w.Code, w.Body.String())
	}

	var resp uploadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.IsTemporary {
		t.Error("upload response must be marked temporary")
	}
	if !strings.HasPrefix(resp.Filename, "upload-") || !strings.HasSuffix(resp.Filename, ".png") {
		t.Errorf("filename = %q", resp.Filename)
	}

	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(img)
	if resp.URL != want {
		t.Error("data URL does not round-trip the upload")
	}

	// Upload stages the image; nothing is persisted yet.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("assets dir has %d files, want 0", len(entries))
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	h, _ := newMediaHandler(t)

	body, contentType := multipartImage(t, "image", "notes.txt", "text/plain", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.Upload(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("text upload = %d, want 400", w.Code)
	}
}

func TestUploadRequiresImageField(t *testing.T) {
	h, _ := newMediaHandler(t)

	body, contentType := multipartImage(t, "attachment", "logo.png", "image/png", pngBytes(t))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.Upload(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("missing field = %d, want 400", w.Code)
	}
}

func TestSaveImagesPersistsBatch(t *testing.T) {
	h, dir := newMediaHandler(t)

	img := pngBytes(t)
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(img)

	payload := saveImagesRequest{Images: []media.ImageInput{
		{ComponentID: "c1", Field: "image", Filename: "hero.png", DataURL: dataURL},
		{ComponentID: "c2", Field: "logo", Filename: "bad.png", DataURL: "not-a-data-url"},
	}}
	raw, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/save-images", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.SaveImages(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("save-images = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Images []media.SaveResult `json:"images"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Images) != 2 {
		t.Fatalf("results = %d, want 2", len(resp.Images))
	}

	good := resp.Images[0]
	if good.ComponentID != "c1" || good.Error != "" || !strings.HasPrefix(good.URL, "/assets/") {
		t.Errorf("good result = %+v", good)
	}
	saved, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(good.URL, "/assets/")))
	if err != nil {
		t.Fatalf("saved file: %v", err)
	}
	if !bytes.Equal(saved, img) {
		t.Error("saved bytes differ from upload")
	}

	bad := resp.Images[1]
	if bad.ComponentID != "c2" || bad.Error == "" || bad.URL != "" {
		t.Errorf("bad result = %+v", bad)
	}
}

func TestSaveImagesEmptyBatch(t *testing.T) {
	h, _ := newMediaHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/save-images", strings.NewReader(`{"images":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.SaveImages(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("empty batch = %d, want 400", w.Code)
	}
}
