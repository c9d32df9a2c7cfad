// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package templates

import (
	"testing"

	"pagesmith/internal/theme"
)

func TestIDsSorted(t *testing.T) {
	ids := IDs()
	if len(ids) == 0 {
		t.Fatal("no templates registered")
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("ids out of order: %q before %q", ids[i-1], ids[i])
		}
	}
}

func TestGet(t *testing.T) {
	tpl, ok := Get("modern-business")
	if !ok {
		t.Fatal("modern-business missing")
	}
	if tpl.Name != "Modern Business" || tpl.Category != "business" {
		t.Errorf("template = %+v", tpl)
	}
	if tpl.Sections() == 0 {
		t.Error("template has no components")
	}

	if _, ok := Get("no-such-template"); ok {
		t.Error("unknown id must not resolve")
	}
}

// TestTemplatesComplete checks every registered layout is usable as-is:
// metadata filled in, a known suggested theme, and components that decode
// into their typed configs.
func TestTemplatesComplete(t *testing.T) {
	categories := map[string]bool{
		"business": true, "saas": true, "ecommerce": true,
		"agency": true, "portfolio": true,
	}
	knownThemes := make(map[string]bool)
	for _, id := range theme.IDs() {
		knownThemes[id] = true
	}

	for _, tpl := range All() {
		if tpl.Name == "" || tpl.Description == "" {
			t.Errorf("%s: missing metadata", tpl.ID)
		}
		if !categories[tpl.Category] {
			t.Errorf("%s: unknown category %q", tpl.ID, tpl.Category)
		}
		if !knownThemes[tpl.Theme] {
			t.Errorf("%s: suggested theme %q not in the registry", tpl.ID, tpl.Theme)
		}

		components, ok := Instantiate(tpl.ID)
		if !ok {
			t.Fatalf("%s: Instantiate failed", tpl.ID)
		}
		if len(components) != tpl.Sections() {
			t.Errorf("%s: instantiated %d components, want %d", tpl.ID, len(components), tpl.Sections())
		}
		for i, c := range components {
			if c.ID == "" {
				t.Errorf("%s: component %d has no id", tpl.ID, i)
			}
			if c.Order != i {
				t.Errorf("%s: component %d has order %d", tpl.ID, i, c.Order)
			}
			if !c.Type.IsImplemented() {
				t.Errorf("%s: component %d type %q has no renderer", tpl.ID, i, c.Type)
			}
			v, err := c.DecodeConfig()
			if err != nil {
				t.Errorf("%s: component %d config invalid: %v", tpl.ID, i, err)
			}
			if v == nil {
				t.Errorf("%s: component %d decoded to nil", tpl.ID, i)
			}
		}
	}
}

func TestInstantiateFreshIDs(t *testing.T) {
	first, ok := Instantiate("saas-product")
	if !ok {
		t.Fatal("saas-product missing")
	}
	second, _ := Instantiate("saas-product")

	seen := make(map[string]bool)
	for _, c := range first {
		seen[c.ID] = true
	}
	for _, c := range second {
		if seen[c.ID] {
			t.Errorf("component id %s reused across instantiations", c.ID)
		}
	}
}

func TestInstantiateUnknown(t *testing.T) {
	if _, ok := Instantiate("no-such-template"); ok {
		t.Error("unknown template must not instantiate")
	}
}
