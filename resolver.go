package marionette

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RigAssets is the in-memory asset triple a resolved group yields, ready for
// rig instantiation by the skeletal runtime.
type RigAssets struct {
	SkeletonData []byte
	AtlasText    string
	Textures     []*ebiten.Image // one per atlas page, page order
}

// AssetResolver resolves a grouped asset triple into loaded, decoded assets.
// Implementations own caching and byte fetching; groups coming from the file
// source already carry their bytes in the entries' Data.
type AssetResolver interface {
	Resolve(group AssetGroup) (*RigAssets, error)
}

// RigFactory instantiates a rig from resolved assets. The skeletal runtime
// side owns skeleton parsing; the returned RigInstance reports the clip and
// socket names marionette orchestrates.
type RigFactory interface {
	NewRig(base string, assets *RigAssets) (*RigInstance, error)
}

// MissingTexturePageError reports an atlas page with no matching image.
// Fatal only for the one rig being created; unrelated rigs proceed.
type MissingTexturePageError struct {
	Base string
	Page string
}

func (e *MissingTexturePageError) Error() string {
	return fmt.Sprintf("marionette: rig %q: no texture for atlas page %q", e.Base, e.Page)
}

// IngestManifest groups the manifest's entries, resolves each complete group,
// and registers the resulting rigs. A group that fails to resolve or
// instantiate aborts only that rig; the others proceed. The returned error
// joins every per-rig failure, nil when all groups made it.
func (s *Stage) IngestManifest(m *Manifest, resolver AssetResolver, factory RigFactory) error {
	return s.ingest(GroupAssets(m.Assets), resolver, factory)
}

// IngestFiles ingests a batch of raw files from the authoring-mode file
// source. Grouping follows the same naming convention as the manifest; rigs
// whose base name is already registered are replaced in place.
func (s *Stage) IngestFiles(files []AssetEntry, resolver AssetResolver, factory RigFactory) error {
	return s.ingest(GroupAssets(files), resolver, factory)
}

func (s *Stage) ingest(groups []AssetGroup, resolver AssetResolver, factory RigFactory) error {
	var errs []error
	for _, group := range groups {
		assets, err := resolver.Resolve(group)
		if err != nil {
			diagf("rig %q: resolve failed: %v", group.Base, err)
			errs = append(errs, err)
			continue
		}
		rig, err := factory.NewRig(group.Base, assets)
		if err != nil {
			diagf("rig %q: instantiation failed: %v", group.Base, err)
			errs = append(errs, err)
			continue
		}
		s.RegisterRig(rig)
	}
	return errors.Join(errs...)
}
