// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package style resolves declarative background, spacing, and layout
// configuration into concrete presentation attributes. All functions are
// pure; missing or malformed fields fall back to defaults instead of
// returning errors.
package style

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"pagesmith/internal/models"
)

// gradientDirections expands the compact direction tags stored in
// documents into CSS linear-gradient directions.
var gradientDirections = map[string]string{
	"to-r":  "to right",
	"to-l":  "to left",
	"to-t":  "to top",
	"to-b":  "to bottom",
	"to-br": "to bottom right",
	"to-bl": "to bottom left",
}

const defaultGradientDirection = "to bottom right"

// BackgroundStyle maps a background config to an inline CSS declaration
// list. fallback is used when a solid background names no color.
func BackgroundStyle(bg models.BackgroundConfig, fallback string) string {
	switch bg.Type {
	case models.BackgroundGradient:
		if bg.Gradient == nil {
			break
		}
		dir := gradientDirections[bg.Gradient.Direction]
		if dir == "" {
			dir = defaultGradientDirection
		}
		return fmt.Sprintf("background:linear-gradient(%s, %s, %s);", dir, bg.Gradient.From, bg.Gradient.To)

	case models.BackgroundImage:
		if bg.Image == nil {
			break
		}
		position := bg.Image.Position
		if position == "" {
			position = "center"
		}
		size := bg.Image.Size
		if size == "" {
			size = "cover"
		}
		image := fmt.Sprintf("url(%s)", bg.Image.URL)
		if bg.Image.Overlay != "" {
			// Pre-composite the overlay so text sits on a dimmed image.
			image = fmt.Sprintf("linear-gradient(%s, %s), %s", bg.Image.Overlay, bg.Image.Overlay, image)
		}
		return fmt.Sprintf("background-image:%s;background-position:%s;background-size:%s;background-repeat:no-repeat;", image, position, size)
	}

	color := bg.Color
	if color == "" {
		color = fallback
	}
	return fmt.Sprintf("background-color:%s;", color)
}

// IsBackgroundDark decides text contrast for a background. It parses the
// representative color (gradient "from", image overlay, or solid color)
// and compares its WCAG relative luminance against 0.5. Image backgrounds
// without an overlay are treated as dark, since photos usually need light
// text. Deterministic for any input.
func IsBackgroundDark(bg models.BackgroundConfig) bool {
	var representative string

	switch bg.Type {
	case models.BackgroundGradient:
		if bg.Gradient != nil {
			representative = bg.Gradient.From
		}
	case models.BackgroundImage:
		if bg.Image == nil || bg.Image.Overlay == "" {
			return true
		}
		representative = bg.Image.Overlay
	default:
		representative = bg.Color
	}

	r, g, b, ok := parseColor(representative)
	if !ok {
		return false
	}
	return relativeLuminance(r, g, b) < 0.5
}

var rgbFuncRe = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)

// parseColor extracts RGB channels from "#rgb", "#rrggbb", "rgb(...)", or
// "rgba(...)" strings. Returns ok=false for anything else (named colors,
// design-token strings, empty).
func parseColor(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, 0, 0, false
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return 0, 0, 0, false
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, 0, 0, false
		}
		return uint8(v >> 16), uint8(v >> 8), uint8(v), true
	}

	if m := rgbFuncRe.FindStringSubmatch(s); m != nil {
		ri, _ := strconv.Atoi(m[1])
		gi, _ := strconv.Atoi(m[2])
		bi, _ := strconv.Atoi(m[3])
		if ri > 255 || gi > 255 || bi > 255 {
			return 0, 0, 0, false
		}
		return uint8(ri), uint8(gi), uint8(bi), true
	}

	return 0, 0, 0, false
}

// relativeLuminance implements the WCAG 2.x formula.
func relativeLuminance(r, g, b uint8) float64 {
	lin := func(c uint8) float64 {
		v := float64(c) / 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(r) + 0.7152*lin(g) + 0.0722*lin(b)
}
