// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for the landing document. The
// entire site is one JSONB row; writers pass the version they loaded and
// the save fails if another writer got there first.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pagesmith/internal/models"
)

// ErrVersionConflict is returned by Save when the stored version no longer
// matches the version the caller loaded. The caller should re-load, merge,
// and retry.
var ErrVersionConflict = errors.New("document version conflict")

// ErrNotFound is returned by Load when the config row does not exist.
var ErrNotFound = errors.New("landing document not found")

// ConfigStore handles reads and writes of the landing document row.
type ConfigStore struct {
	db *sql.DB
}

// NewConfigStore creates a new ConfigStore with the given database connection.
func NewConfigStore(db *sql.DB) *ConfigStore {
	return &ConfigStore{db: db}
}

// Load reads the landing document and its current version.
func (s *ConfigStore) Load(ctx context.Context) (*models.LandingConfig, int64, error) {
	var raw []byte
	var version int64
	err := s.db.QueryRowContext(ctx, `
		SELECT doc, version FROM landing_config WHERE id = 1
	`).Scan(&raw, &version)
	if err == sql.ErrNoRows {
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("load landing config: %w", err)
	}

	cfg := &models.LandingConfig{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, 0, fmt.Errorf("unmarshal landing config: %w", err)
	}
	return cfg, version, nil
}

// Save writes the document with a compare-and-swap on the version column.
// The server stamps metadata (lastUpdated, totalPages) before writing, so
// clients never control those fields. Returns the new version on success,
// or ErrVersionConflict if expectVersion is stale.
func (s *ConfigStore) Save(ctx context.Context, cfg *models.LandingConfig, expectVersion int64) (int64, error) {
	cfg.Metadata.LastUpdated = time.Now()
	cfg.Metadata.TotalPages = len(cfg.Pages)

	raw, err := json.Marshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("marshal landing config: %w", err)
	}

	var newVersion int64
	err = s.db.QueryRowContext(ctx, `
		UPDATE landing_config
		SET doc = $1, version = version + 1, updated_at = now()
		WHERE id = 1 AND version = $2
		RETURNING version
	`, raw, expectVersion).Scan(&newVersion)
	if err == sql.ErrNoRows {
		return 0, ErrVersionConflict
	}
	if err != nil {
		return 0, fmt.Errorf("save landing config: %w", err)
	}
	return newVersion, nil
}

// Replace overwrites the document unconditionally and returns the new
// version. Used by import, where the caller explicitly intends to discard
// whatever was stored.
func (s *ConfigStore) Replace(ctx context.Context, cfg *models.LandingConfig) (int64, error) {
	cfg.Metadata.LastUpdated = time.Now()
	cfg.Metadata.TotalPages = len(cfg.Pages)

	raw, err := json.Marshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("marshal landing config: %w", err)
	}

	var newVersion int64
	err = s.db.QueryRowContext(ctx, `
		UPDATE landing_config
		SET doc = $1, version = version + 1, updated_at = now()
		WHERE id = 1
		RETURNING version
	`, raw).Scan(&newVersion)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("replace landing config: %w", err)
	}
	return newVersion, nil
}
