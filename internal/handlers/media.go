// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"pagesmith/internal/media"
)

// Media groups the image upload handlers.
type Media struct {
	store *media.Store
}

// NewMedia creates the media handler group.
func NewMedia(s *media.Store) *Media {
	return &Media{store: s}
}

// uploadResponse echoes the image back as a data URL. The file is not
// persisted here: the editor holds it inline until the page is saved and
// save-images converts data URLs to real assets.
type uploadResponse struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	IsTemporary bool   `json:"isTemporary"`
}

// Upload accepts one multipart image, validates type and size, and
// returns it as a base64 data URL with a generated filename.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, media.MaxUploadSize+1<<20)
	if err := r.ParseMultipartForm(media.MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Upload too large or malformed.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing image field.")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := media.ValidateUpload(contentType, header.Size); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read upload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to read upload.")
		return
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	writeJSON(w, http.StatusOK, uploadResponse{
		URL:         dataURL,
		Filename:    media.Filename(header.Filename),
		IsTemporary: true,
	})
}

// saveImagesRequest carries a batch of inline data URLs to persist.
type saveImagesRequest struct {
	Images []media.ImageInput `json:"images"`
}

// SaveImages persists a batch of data-URL images to the assets directory
// in parallel. Individual failures are reported per image.
func (h *Media) SaveImages(w http.ResponseWriter, r *http.Request) {
	var req saveImagesRequest
	// Batch payloads carry base64 image data, so the cap is per-image
	// size times a small batch.
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 8*media.MaxUploadSize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload.")
		return
	}
	if len(req.Images) == 0 {
		writeError(w, http.StatusBadRequest, "No images to save.")
		return
	}

	results := h.store.SaveImages(r.Context(), req.Images)
	writeJSON(w, http.StatusOK, map[string]any{"images": results})
}
