package catalog

import (
	"context"
)

//go:generate mockgen -destination=mock/mock.go -package=mock github.com/imagespy/driverimages/catalog Catalog

// Catalog is the provider side of the image inventory.
type Catalog interface {
	// Images returns all images matching f, in the order the provider returned them.
	Images(ctx context.Context, f Filter) ([]RawImage, error)
	// Snapshots resolves snapshot ids. The result may be shorter than ids if
	// some of them are stale.
	Snapshots(ctx context.Context, ids []string) ([]SnapshotRecord, error)
	// Deregister deregisters an image and deletes the snapshots it references.
	Deregister(ctx context.Context, imageID string) (bool, error)
}

// FilterField selects the attribute a Filter matches on.
type FilterField string

const (
	FilterName    FilterField = "name"
	FilterImageID FilterField = "image-id"
)

// Filter restricts Images to a single attribute value. Name values may
// contain the wildcard "*".
type Filter struct {
	Field FilterField
	Value string
}

// NameFilter matches images whose name matches pattern.
func NameFilter(pattern string) Filter {
	return Filter{Field: FilterName, Value: pattern}
}

// ImageIDFilter matches the image with the given id.
func ImageIDFilter(id string) Filter {
	return Filter{Field: FilterImageID, Value: id}
}

func (f Filter) String() string {
	return string(f.Field) + "=" + f.Value
}
