// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// BackgroundType tags the background variant of a component section.
type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
)

// GradientConfig describes a two-stop directional gradient. Direction uses
// the compact form ("to-r", "to-br", ...); the style resolver expands it.
type GradientConfig struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Direction string `json:"direction,omitempty"`
}

// ImageBackground describes an image background with an optional
// translucent overlay color pre-composited over it.
type ImageBackground struct {
	URL      string  `json:"url"`
	Overlay  string  `json:"overlay,omitempty"`
	Position string  `json:"position,omitempty"`
	Size     string  `json:"size,omitempty"`
	Opacity  float64 `json:"opacity,omitempty"`
}

// BackgroundConfig is the tagged union consumed by every visual component.
// Only the field matching Type is meaningful; the rest are ignored.
type BackgroundConfig struct {
	Type     BackgroundType   `json:"type"`
	Color    string           `json:"color,omitempty"`
	Gradient *GradientConfig  `json:"gradient,omitempty"`
	Image    *ImageBackground `json:"image,omitempty"`
}

// AnimationConfig holds entrance animation parameters. Purely
// presentational; durations are milliseconds.
type AnimationConfig struct {
	Type     string `json:"type,omitempty"` // none, fadeIn, fadeInUp, ...
	Duration int    `json:"duration,omitempty"`
	Delay    int    `json:"delay,omitempty"`
}

// SpacingConfig holds declarative padding/margin sizes ("none".."2xl").
type SpacingConfig struct {
	Padding string `json:"padding,omitempty"`
	Margin  string `json:"margin,omitempty"`
}
