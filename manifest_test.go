package marionette

import "testing"

func TestParseManifest(t *testing.T) {
	data := []byte(`
assets:
  - name: hero.skel
  - name: hero.atlas
  - name: hero.png
  - name: hero_2.png
`)
	m, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if len(m.Assets) != 4 {
		t.Fatalf("assets = %d, want 4", len(m.Assets))
	}
	if m.Assets[0].Name != "hero.skel" {
		t.Errorf("assets[0] = %q", m.Assets[0].Name)
	}
}

func TestParseManifestMalformed(t *testing.T) {
	if _, err := ParseManifest([]byte("assets: {not a list")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestParseManifestEmpty(t *testing.T) {
	if _, err := ParseManifest([]byte("assets: []")); err == nil {
		t.Error("expected error for empty manifest")
	}
}

func entriesNamed(names ...string) []AssetEntry {
	entries := make([]AssetEntry, len(names))
	for i, n := range names {
		entries[i] = AssetEntry{Name: n}
	}
	return entries
}

func TestGroupAssetsCompleteTriple(t *testing.T) {
	groups := GroupAssets(entriesNamed("hero.skel", "hero.atlas", "hero.png"))
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	g := groups[0]
	if g.Base != "hero" {
		t.Errorf("Base = %q", g.Base)
	}
	if g.Skeleton.Name != "hero.skel" || g.Atlas.Name != "hero.atlas" {
		t.Errorf("skeleton=%q atlas=%q", g.Skeleton.Name, g.Atlas.Name)
	}
	if len(g.Images) != 1 || g.Images[0].Name != "hero.png" {
		t.Errorf("images = %v", g.Images)
	}
}

func TestGroupAssetsJSONSkeleton(t *testing.T) {
	groups := GroupAssets(entriesNamed("hero.json", "hero.atlas", "hero.png"))
	if len(groups) != 1 {
		t.Fatalf("textual skeleton should complete the group, got %d", len(groups))
	}
}

func TestGroupAssetsMultiPageImages(t *testing.T) {
	groups := GroupAssets(entriesNamed("hero_3.png", "hero.skel", "hero.png", "hero.atlas", "hero_2.png"))
	if len(groups) != 1 {
		t.Fatalf("pages must collapse into one group, got %d", len(groups))
	}
	imgs := groups[0].Images
	if len(imgs) != 3 {
		t.Fatalf("images = %d, want 3", len(imgs))
	}
	want := []string{"hero.png", "hero_2.png", "hero_3.png"}
	for i, w := range want {
		if imgs[i].Name != w {
			t.Errorf("images[%d] = %q, want %q (page order)", i, imgs[i].Name, w)
		}
	}
}

func TestGroupAssetsBareNumericSuffix(t *testing.T) {
	groups := GroupAssets(entriesNamed("hero.skel", "hero.atlas", "hero2.png"))
	if len(groups) != 1 {
		t.Fatalf("hero2.png should be a page of hero, got %d groups", len(groups))
	}
}

func TestGroupAssetsIncompleteDropped(t *testing.T) {
	groups := GroupAssets(entriesNamed(
		"hero.skel", "hero.atlas", "hero.png", // complete
		"villain.skel", "villain.png", // no atlas
		"ghost.atlas", "ghost.png", // no skeleton
		"shadow.skel", "shadow.atlas", // no image
	))
	if len(groups) != 1 || groups[0].Base != "hero" {
		t.Fatalf("only hero should survive, got %+v", groups)
	}
}

func TestGroupAssetsMultipleGroupsKeepOrder(t *testing.T) {
	groups := GroupAssets(entriesNamed(
		"b.skel", "b.atlas", "b.png",
		"a.skel", "a.atlas", "a.png",
	))
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Base != "b" || groups[1].Base != "a" {
		t.Errorf("order = [%q %q], want first appearance order", groups[0].Base, groups[1].Base)
	}
}

func TestGroupAssetsUnknownExtensionIgnored(t *testing.T) {
	groups := GroupAssets(entriesNamed("hero.skel", "hero.atlas", "hero.png", "hero.txt"))
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
}

func TestImageBase(t *testing.T) {
	cases := []struct {
		stem string
		base string
		page int
	}{
		{"hero", "hero", 0},
		{"hero_2", "hero", 2},
		{"hero2", "hero", 2},
		{"hero_10", "hero", 10},
		{"42", "42", 0}, // all digits: keep as-is
	}
	for _, c := range cases {
		base, page := imageBase(c.stem)
		if base != c.base || page != c.page {
			t.Errorf("imageBase(%q) = (%q,%d), want (%q,%d)", c.stem, base, page, c.base, c.page)
		}
	}
}
