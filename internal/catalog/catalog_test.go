package catalog

import "testing"

func TestProductsFilterByCategory(t *testing.T) {
	all := Products("")
	if len(all) == 0 {
		t.Fatal("expected a non-empty catalog")
	}

	airpods := Products("airpods")
	if len(airpods) == 0 {
		t.Fatal("expected airpods entries")
	}
	for _, p := range airpods {
		if p.Category != "airpods" {
			t.Errorf("filter leaked category %q", p.Category)
		}
	}

	if got := Products("toasters"); len(got) != 0 {
		t.Errorf("expected empty result for unknown category, got %d", len(got))
	}
}

func TestProductByID(t *testing.T) {
	p := ProductByID("macbook-air-13-m4")
	if p == nil {
		t.Fatal("expected known product")
	}
	if p.Name != "MacBook Air 13\"" {
		t.Errorf("unexpected name %q", p.Name)
	}
	if len(p.Prices) == 0 {
		t.Error("expected price points")
	}

	if ProductByID("nope") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) == 0 {
		t.Fatal("expected categories")
	}

	total := 0
	for _, c := range cats {
		if c.Count <= 0 {
			t.Errorf("category %q has non-positive count", c.ID)
		}
		if c.Label == "" {
			t.Errorf("category %q missing label", c.ID)
		}
		total += c.Count
	}
	if total != len(Products("")) {
		t.Errorf("category counts sum to %d, catalog has %d products", total, len(Products("")))
	}
}
