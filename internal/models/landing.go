// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the landing configuration document: the root
// config, pages, components, themes, and the per-type component configs.
// One document holds the entire site; pages are keyed by ID and resolved
// publicly by slug.
package models

import "time"

// PageStatus represents the publishing state of a landing page.
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
	PageStatusArchived  PageStatus = "archived"
)

// Metadata describes the document as a whole. LastUpdated and TotalPages
// are stamped by the server on every save, never trusted from the client.
type Metadata struct {
	LastUpdated time.Time `json:"lastUpdated"`
	TotalPages  int       `json:"totalPages"`
	Version     string    `json:"version"`
}

// SEOConfig holds per-page search and social metadata.
type SEOConfig struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords,omitempty"`
	OGImage         string   `json:"ogImage,omitempty"`
	Canonical       string   `json:"canonical,omitempty"`
}

// NavigationLink is a single entry in the site navigation.
type NavigationLink struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// Navigation holds the optional site-wide navigation bar configuration.
type Navigation struct {
	Logo  string           `json:"logo,omitempty"`
	Links []NavigationLink `json:"links"`
}

// LandingPage is one page of the site: an ordered list of components plus
// page-level metadata. Slug must be unique across all pages in the document;
// uniqueness is enforced at write time by the handlers.
type LandingPage struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Slug        string      `json:"slug"`
	Theme       string      `json:"theme"` // theme registry ID, weak reference
	SEO         SEOConfig   `json:"seo"`
	Components  []Component `json:"components"`
	Status      PageStatus  `json:"status,omitempty"`
	CreatedAt   time.Time   `json:"createdAt,omitempty"`
	UpdatedAt   time.Time   `json:"updatedAt,omitempty"`
}

// IsPublished returns true if the page is publicly visible.
func (p *LandingPage) IsPublished() bool {
	return p.Status == PageStatusPublished
}

// LandingConfig is the root document. It is read and written wholesale;
// the store guards concurrent writers with a version token.
type LandingConfig struct {
	Version    string                 `json:"version"`
	Metadata   Metadata               `json:"metadata"`
	Themes     map[string]Theme       `json:"themes"`
	Pages      map[string]LandingPage `json:"pages"`
	Navigation *Navigation            `json:"navigation,omitempty"`
}

// PageBySlug scans the pages map for a page with the given slug.
// Returns the page ID and the page, or "" and nil when absent.
func (c *LandingConfig) PageBySlug(slug string) (string, *LandingPage) {
	for id, page := range c.Pages {
		if page.Slug == slug {
			p := page
			return id, &p
		}
	}
	return "", nil
}

// SlugConflict reports whether another page (different ID) already uses
// the given slug.
func (c *LandingConfig) SlugConflict(pageID, slug string) bool {
	for id, page := range c.Pages {
		if id != pageID && page.Slug == slug {
			return true
		}
	}
	return false
}
