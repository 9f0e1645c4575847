package marionette

import (
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AssetEntry is one raw asset descriptor: a file name following the rig
// naming convention and, for file-source ingestion, its content. Manifest
// entries leave Data nil; the AssetResolver fetches bytes on demand.
type AssetEntry struct {
	Name string `yaml:"name"`
	Data []byte `yaml:"-"`
}

// Manifest lists the raw asset entries of a scene.
type Manifest struct {
	Assets []AssetEntry `yaml:"assets"`
}

// ParseManifest parses a YAML asset manifest:
//
//	assets:
//	  - name: hero.skel
//	  - name: hero.atlas
//	  - name: hero.png
//	  - name: hero_2.png
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("marionette: failed to parse manifest: %w", err)
	}
	if len(m.Assets) == 0 {
		return nil, fmt.Errorf("marionette: manifest lists no assets")
	}
	return &m, nil
}

// AssetGroup is a complete skeleton/atlas/texture triple for one rig, ready
// for resolution and instantiation.
type AssetGroup struct {
	Base     string
	Skeleton AssetEntry   // .skel (binary) or .json (textual) skeleton data
	Atlas    AssetEntry   // .atlas descriptor
	Images   []AssetEntry // atlas pages, base page first then by page number
}

type assetKind uint8

const (
	assetUnknown assetKind = iota
	assetSkeleton
	assetAtlas
	assetImage
)

func classifyAsset(name string) assetKind {
	switch strings.ToLower(path.Ext(name)) {
	case ".skel", ".json":
		return assetSkeleton
	case ".atlas":
		return assetAtlas
	case ".png", ".jpg", ".jpeg", ".webp":
		return assetImage
	}
	return assetUnknown
}

// imageBase strips the page suffix from an image stem: "hero_2" and "hero2"
// are both pages of "hero". The page number orders multi-page images; the
// suffix-free stem is page 0.
func imageBase(stem string) (string, int) {
	i := len(stem)
	for i > 0 && stem[i-1] >= '0' && stem[i-1] <= '9' {
		i--
	}
	if i == len(stem) || i == 0 {
		return stem, 0
	}
	page, _ := strconv.Atoi(stem[i:])
	base := strings.TrimSuffix(stem[:i], "_")
	if base == "" {
		return stem, 0
	}
	return base, page
}

// GroupAssets groups raw asset entries by inferred base name into
// skeleton/atlas/texture triples. A complete group needs one skeleton entry,
// one atlas entry, and at least one image sharing the base name; incomplete
// groups are dropped with a diagnostic, never propagated. Group order
// follows first appearance in entries; unknown extensions are ignored.
func GroupAssets(entries []AssetEntry) []AssetGroup {
	type pageImage struct {
		entry AssetEntry
		page  int
	}
	type partial struct {
		group    AssetGroup
		images   []pageImage
		hasSkel  bool
		hasAtlas bool
	}
	byBase := make(map[string]*partial)
	var bases []string

	get := func(base string) *partial {
		p := byBase[base]
		if p == nil {
			p = &partial{group: AssetGroup{Base: base}}
			byBase[base] = p
			bases = append(bases, base)
		}
		return p
	}

	for _, entry := range entries {
		kind := classifyAsset(entry.Name)
		stem := strings.TrimSuffix(entry.Name, path.Ext(entry.Name))
		switch kind {
		case assetSkeleton:
			p := get(stem)
			p.group.Skeleton = entry
			p.hasSkel = true
		case assetAtlas:
			p := get(stem)
			p.group.Atlas = entry
			p.hasAtlas = true
		case assetImage:
			base, page := imageBase(stem)
			p := get(base)
			p.images = append(p.images, pageImage{entry: entry, page: page})
		default:
			diagf("asset %q: unrecognized extension, ignoring", entry.Name)
		}
	}

	groups := make([]AssetGroup, 0, len(bases))
	for _, base := range bases {
		p := byBase[base]
		if !p.hasSkel || !p.hasAtlas || len(p.images) == 0 {
			diagf("asset group %q incomplete (skeleton=%v atlas=%v images=%d), dropping",
				base, p.hasSkel, p.hasAtlas, len(p.images))
			continue
		}
		sort.SliceStable(p.images, func(i, j int) bool {
			return p.images[i].page < p.images[j].page
		})
		p.group.Images = make([]AssetEntry, len(p.images))
		for i, img := range p.images {
			p.group.Images[i] = img.entry
		}
		groups = append(groups, p.group)
	}
	return groups
}
