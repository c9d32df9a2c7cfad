// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"fmt"
)

// ComponentType tags which renderer a component dispatches to.
type ComponentType string

const (
	TypeHero         ComponentType = "hero"
	TypeFeatures     ComponentType = "features"
	TypePricing      ComponentType = "pricing"
	TypeTestimonials ComponentType = "testimonials"
	TypeCTA          ComponentType = "cta"
	TypeFooter       ComponentType = "footer"
	TypeStats        ComponentType = "stats"
	TypeTeam         ComponentType = "team"
	TypeFAQ          ComponentType = "faq"
	TypeGallery      ComponentType = "gallery"
	TypeLogoCloud    ComponentType = "logo-cloud"
	TypeContact      ComponentType = "contact"
	TypeContent      ComponentType = "content"
	TypeNewsletter   ComponentType = "newsletter"
	TypeVideo        ComponentType = "video"
)

// reservedTypes are recognized in documents but have no renderer yet.
// They render as a neutral placeholder instead of an unknown-type error.
var reservedTypes = map[ComponentType]bool{
	"gym-hero":         true,
	"gym-services":     true,
	"gym-pricing":      true,
	"gym-testimonials": true,
	"gym-navigation":   true,
	"gym-about":        true,
	"gym-contact":      true,
}

// implementedTypes lists every type with a dedicated config variant.
var implementedTypes = map[ComponentType]bool{
	TypeHero: true, TypeFeatures: true, TypePricing: true,
	TypeTestimonials: true, TypeCTA: true, TypeFooter: true,
	TypeStats: true, TypeTeam: true, TypeFAQ: true, TypeGallery: true,
	TypeLogoCloud: true, TypeContact: true, TypeContent: true,
	TypeNewsletter: true, TypeVideo: true,
}

// IsImplemented reports whether t has a dedicated renderer.
func (t ComponentType) IsImplemented() bool { return implementedTypes[t] }

// IsReserved reports whether t is a known-but-unimplemented type.
func (t ComponentType) IsReserved() bool { return reservedTypes[t] }

// Component is one typed, orderable, visibility-toggleable section of a
// page. Config stays raw until a renderer or editor decodes it into the
// variant matching Type.
type Component struct {
	ID      string          `json:"id"`
	Type    ComponentType   `json:"type"`
	Order   int             `json:"order"`
	Visible *bool           `json:"visible,omitempty"`
	Config  json.RawMessage `json:"config"`
}

// IsVisible returns true unless visibility was explicitly disabled.
// An absent visible field means visible.
func (c *Component) IsVisible() bool {
	return c.Visible == nil || *c.Visible
}

// DecodeConfig unmarshals Config into the closed variant for the
// component's type. Reserved and unknown types return (nil, nil); callers
// handle those with placeholders, not errors.
func (c *Component) DecodeConfig() (any, error) {
	decode := func(v any) (any, error) {
		if len(c.Config) == 0 {
			return v, nil
		}
		if err := json.Unmarshal(c.Config, v); err != nil {
			return nil, fmt.Errorf("decode %s config: %w", c.Type, err)
		}
		return v, nil
	}

	switch c.Type {
	case TypeHero:
		return decode(&HeroConfig{})
	case TypeFeatures:
		return decode(&FeaturesConfig{})
	case TypePricing:
		return decode(&PricingConfig{})
	case TypeTestimonials:
		return decode(&TestimonialsConfig{})
	case TypeCTA:
		return decode(&CTAConfig{})
	case TypeFooter:
		return decode(&FooterConfig{})
	case TypeStats:
		return decode(&StatsConfig{})
	case TypeTeam:
		return decode(&TeamConfig{})
	case TypeFAQ:
		return decode(&FAQConfig{})
	case TypeGallery:
		return decode(&GalleryConfig{})
	case TypeLogoCloud:
		return decode(&LogoCloudConfig{})
	case TypeContact:
		return decode(&ContactConfig{})
	case TypeContent:
		return decode(&ContentConfig{})
	case TypeNewsletter:
		return decode(&NewsletterConfig{})
	case TypeVideo:
		return decode(&VideoConfig{})
	default:
		return nil, nil
	}
}

// CTAButton is a call-to-action link used by hero and cta sections.
type CTAButton struct {
	Text  string `json:"text"`
	Link  string `json:"link"`
	Style string `json:"style,omitempty"` // primary, secondary, outline
}

// HeroConfig configures the hero section.
type HeroConfig struct {
	Title        string           `json:"title"`
	Subtitle     string           `json:"subtitle"`
	Description  string           `json:"description"`
	PrimaryCTA   *CTAButton       `json:"primaryCTA,omitempty"`
	SecondaryCTA *CTAButton       `json:"secondaryCTA,omitempty"`
	Image        string           `json:"image,omitempty"`
	Alignment    string           `json:"alignment,omitempty"` // left, center, right
	Background   BackgroundConfig `json:"background"`
	Animation    AnimationConfig  `json:"animation"`
	Spacing      SpacingConfig    `json:"spacing"`
}

// FeatureItem is one entry in a features grid or carousel.
type FeatureItem struct {
	ID          string `json:"id"`
	Icon        string `json:"icon,omitempty"` // icon name or emoji
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// FeaturesConfig configures the features section.
type FeaturesConfig struct {
	Title       string           `json:"title"`
	Subtitle    string           `json:"subtitle,omitempty"`
	Description string           `json:"description,omitempty"`
	Features    []FeatureItem    `json:"features"`
	Layout      string           `json:"layout,omitempty"` // grid, list, carousel
	Columns     int              `json:"columns,omitempty"`
	Background  BackgroundConfig `json:"background"`
	Animation   AnimationConfig  `json:"animation"`
	Spacing     SpacingConfig    `json:"spacing"`
}

// PricingPlan is a single plan card. At most one plan should be
// highlighted; the renderer elevates it and shows a badge.
type PricingPlan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Period      string   `json:"period,omitempty"` // e.g. "/month"
	Features    []string `json:"features"`
	Highlighted bool     `json:"highlighted,omitempty"`
	Badge       string   `json:"badge,omitempty"`
	CTAText     string   `json:"ctaText,omitempty"`
	CTALink     string   `json:"ctaLink,omitempty"`
}

// PricingConfig configures the pricing section.
type PricingConfig struct {
	Title       string           `json:"title"`
	Subtitle    string           `json:"subtitle,omitempty"`
	Description string           `json:"description,omitempty"`
	Plans       []PricingPlan    `json:"plans"`
	Layout      string           `json:"layout,omitempty"` // grid, carousel
	Background  BackgroundConfig `json:"background"`
	Animation   AnimationConfig  `json:"animation"`
	Spacing     SpacingConfig    `json:"spacing"`
}

// TestimonialItem is one customer quote.
type TestimonialItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
	Rating  int    `json:"rating,omitempty"` // 1-5 filled stars
	Text    string `json:"text"`
}

// TestimonialsConfig configures the testimonials section.
type TestimonialsConfig struct {
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle,omitempty"`
	Description  string            `json:"description,omitempty"`
	Testimonials []TestimonialItem `json:"testimonials"`
	Layout       string            `json:"layout,omitempty"` // grid, carousel, masonry
	Background   BackgroundConfig  `json:"background"`
	Animation    AnimationConfig   `json:"animation"`
	Spacing      SpacingConfig     `json:"spacing"`
}

// CTAConfig configures the standalone call-to-action band.
type CTAConfig struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	PrimaryCTA   *CTAButton       `json:"primaryCTA,omitempty"`
	SecondaryCTA *CTAButton       `json:"secondaryCTA,omitempty"`
	Background   BackgroundConfig `json:"background"`
	Animation    AnimationConfig  `json:"animation"`
	Spacing      SpacingConfig    `json:"spacing"`
}

// FooterLink is one link in a footer column.
type FooterLink struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// FooterColumn groups footer links under a heading.
type FooterColumn struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Links []FooterLink `json:"links"`
}

// SocialLink points at a profile on a known platform. Platform is one of:
// facebook, twitter, instagram, linkedin, youtube, github.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// FooterConfig configures the page footer.
type FooterConfig struct {
	Logo       string           `json:"logo,omitempty"`
	Tagline    string           `json:"tagline,omitempty"`
	Columns    []FooterColumn   `json:"columns"`
	Social     []SocialLink     `json:"social,omitempty"`
	Copyright  string           `json:"copyright,omitempty"`
	Background BackgroundConfig `json:"background"`
	Spacing    SpacingConfig    `json:"spacing"`
}

// StatItem is one number with its label, e.g. "120k" / "Happy users".
type StatItem struct {
	ID     string `json:"id"`
	Value  string `json:"value"`
	Label  string `json:"label"`
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// StatsConfig configures the stats band.
type StatsConfig struct {
	Title      string           `json:"title,omitempty"`
	Subtitle   string           `json:"subtitle,omitempty"`
	Stats      []StatItem       `json:"stats"`
	Columns    int              `json:"columns,omitempty"`
	Background BackgroundConfig `json:"background"`
	Animation  AnimationConfig  `json:"animation"`
	Spacing    SpacingConfig    `json:"spacing"`
}

// TeamMember is one person card in the team section.
type TeamMember struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Role   string       `json:"role,omitempty"`
	Bio    string       `json:"bio,omitempty"`
	Avatar string       `json:"avatar,omitempty"`
	Social []SocialLink `json:"social,omitempty"`
}

// TeamConfig configures the team section.
type TeamConfig struct {
	Title       string           `json:"title"`
	Subtitle    string           `json:"subtitle,omitempty"`
	Description string           `json:"description,omitempty"`
	Members     []TeamMember     `json:"members"`
	Columns     int              `json:"columns,omitempty"`
	Background  BackgroundConfig `json:"background"`
	Animation   AnimationConfig  `json:"animation"`
	Spacing     SpacingConfig    `json:"spacing"`
}

// FAQItem is one question/answer pair. Items expand independently.
type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQConfig configures the FAQ accordion.
type FAQConfig struct {
	Title       string           `json:"title"`
	Subtitle    string           `json:"subtitle,omitempty"`
	Description string           `json:"description,omitempty"`
	Items       []FAQItem        `json:"items"`
	Layout      string           `json:"layout,omitempty"` // single, two-column
	Background  BackgroundConfig `json:"background"`
	Animation   AnimationConfig  `json:"animation"`
	Spacing     SpacingConfig    `json:"spacing"`
}

// GalleryImage is one image in the gallery grid and lightbox.
type GalleryImage struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Alt         string `json:"alt,omitempty"`
}

// GalleryConfig configures the image gallery.
type GalleryConfig struct {
	Title       string           `json:"title,omitempty"`
	Subtitle    string           `json:"subtitle,omitempty"`
	Description string           `json:"description,omitempty"`
	Images      []GalleryImage   `json:"images"`
	Layout      string           `json:"layout,omitempty"` // grid, masonry
	Columns     int              `json:"columns,omitempty"`
	Background  BackgroundConfig `json:"background"`
	Animation   AnimationConfig  `json:"animation"`
	Spacing     SpacingConfig    `json:"spacing"`
}

// LogoItem is one logo in the logo cloud.
type LogoItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Link string `json:"link,omitempty"`
}

// LogoCloudConfig configures the logo cloud. Grayscale defaults to true
// when the field is absent.
type LogoCloudConfig struct {
	Title      string           `json:"title,omitempty"`
	Logos      []LogoItem       `json:"logos"`
	Layout     string           `json:"layout,omitempty"` // grid, scroll
	Grayscale  *bool            `json:"grayscale,omitempty"`
	Background BackgroundConfig `json:"background"`
	Spacing    SpacingConfig    `json:"spacing"`
}

// ContactConfig configures the contact section.
type ContactConfig struct {
	Title       string           `json:"title"`
	Subtitle    string           `json:"subtitle,omitempty"`
	Description string           `json:"description,omitempty"`
	Email       string           `json:"email,omitempty"`
	Phone       string           `json:"phone,omitempty"`
	Address     string           `json:"address,omitempty"`
	ShowForm    bool             `json:"showForm,omitempty"`
	Background  BackgroundConfig `json:"background"`
	Animation   AnimationConfig  `json:"animation"`
	Spacing     SpacingConfig    `json:"spacing"`
}

// ContentConfig configures a free-form rich text block. Body may be
// Markdown (Format "markdown") or raw HTML (Format "html", the default).
type ContentConfig struct {
	Title      string           `json:"title,omitempty"`
	Body       string           `json:"body"`
	Format     string           `json:"format,omitempty"` // html, markdown
	Alignment  string           `json:"alignment,omitempty"`
	Width      string           `json:"width,omitempty"`
	Background BackgroundConfig `json:"background"`
	Animation  AnimationConfig  `json:"animation"`
	Spacing    SpacingConfig    `json:"spacing"`
}

// NewsletterConfig configures the newsletter signup band.
type NewsletterConfig struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
	ButtonText  string           `json:"buttonText,omitempty"`
	Background  BackgroundConfig `json:"background"`
	Animation   AnimationConfig  `json:"animation"`
	Spacing     SpacingConfig    `json:"spacing"`
}

// VideoConfig configures an embedded video section.
type VideoConfig struct {
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	URL         string           `json:"url"`
	Poster      string           `json:"poster,omitempty"`
	Autoplay    bool             `json:"autoplay,omitempty"`
	Background  BackgroundConfig `json:"background"`
	Animation   AnimationConfig  `json:"animation"`
	Spacing     SpacingConfig    `json:"spacing"`
}
