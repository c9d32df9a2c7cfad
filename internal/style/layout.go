// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package style

import "pagesmith/internal/models"

// LayoutOptions collects the declarative layout knobs of a section.
type LayoutOptions struct {
	Spacing        models.SpacingConfig
	ContainerWidth string
	Alignment      string
	Columns        int
}

// Layout holds the resolved presentation class tokens for a section.
// The class names are defined in the shared stylesheet emitted by the
// page renderer.
type Layout struct {
	Section   string // padding + margin classes
	Container string // max-width container class
	Alignment string // text/items alignment class
	Grid      string // grid column class
}

var paddingClasses = map[string]string{
	"none": "pad-none",
	"sm":   "pad-sm",
	"md":   "pad-md",
	"lg":   "pad-lg",
	"xl":   "pad-xl",
	"2xl":  "pad-2xl",
}

var marginClasses = map[string]string{
	"none": "",
	"sm":   "gap-sm",
	"md":   "gap-md",
	"lg":   "gap-lg",
	"xl":   "gap-xl",
}

var containerClasses = map[string]string{
	"xs":         "container-xs",     // 448px, forms
	"sm":         "container-sm",     // 512px
	"md":         "container-md",     // 672px
	"narrow":     "container-narrow", // 768px
	"lg":         "container-lg",     // 896px
	"default":    "container",        // 1280px
	"wide":       "container-wide",   // 1536px
	"xl":         "container-xl",     // 1600px
	"2xl":        "container-2xl",    // 1800px
	"full":       "container-full",
	"fullscreen": "container-screen",
}

var alignmentClasses = map[string]string{
	"left":   "align-left",
	"center": "align-center",
	"right":  "align-right",
}

var gridClasses = map[int]string{
	1: "cols-1",
	2: "cols-2",
	3: "cols-3",
	4: "cols-4",
	5: "cols-5",
	6: "cols-6",
}

// Padding maps a declarative padding size to its class, defaulting to xl.
func Padding(size string) string {
	if cls, ok := paddingClasses[size]; ok {
		return cls
	}
	return paddingClasses["xl"]
}

// Margin maps a declarative margin size to its class; unknown sizes get none.
func Margin(size string) string {
	return marginClasses[size]
}

// Container maps a container width token to its class, defaulting to the
// standard 1280px container.
func Container(width string) string {
	if cls, ok := containerClasses[width]; ok {
		return cls
	}
	return containerClasses["default"]
}

// Alignment maps an alignment token to its class, defaulting to center.
func Alignment(a string) string {
	if cls, ok := alignmentClasses[a]; ok {
		return cls
	}
	return alignmentClasses["center"]
}

// GridColumns maps a column count to its grid class, defaulting to 3.
func GridColumns(n int) string {
	if cls, ok := gridClasses[n]; ok {
		return cls
	}
	return gridClasses[3]
}

// ResolveLayout resolves every layout knob at once.
func ResolveLayout(opts LayoutOptions) Layout {
	section := Padding(opts.Spacing.Padding)
	if m := Margin(opts.Spacing.Margin); m != "" {
		section += " " + m
	}
	return Layout{
		Section:   section,
		Container: Container(opts.ContainerWidth),
		Alignment: Alignment(opts.Alignment),
		Grid:      GridColumns(opts.Columns),
	}
}
