package nitf

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// ImageIndex provides fast spatial queries over the image segments of a
// collection of NITF files.
//
// The index stores lightweight metadata per image (footprint bounds,
// category, dimensions) and answers spatial queries through an R-tree,
// so finding the images covering a region of interest is O(log N)
// instead of a linear scan over every decoded file.
//
// Only images whose corner coordinates carry geodetic values
// (geographic, geocentric or decimal degrees ICORDS) are indexed;
// projected footprints (UTM, MGRS) have no lat/lon to index by.
//
// Example:
//
//	idx, err := nitf.BuildIndexFromDir("/data/imagery", parser, nitf.DefaultLoadOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	hits := idx.Query(nitf.Bounds{
//	    MinLat: 37.5, MaxLat: 38.0,
//	    MinLon: -122.5, MaxLon: -122.0,
//	}, nitf.QueryOptions{})
type ImageIndex struct {
	entries []ImageEntry
	rtree   *rtreego.Rtree
}

// ImageEntry contains indexed metadata for a single image segment.
type ImageEntry struct {
	Path       string // Path of the containing file
	Identifier string // IID1 segment identifier
	Title      string // IID2 title
	GeoBounds  Bounds // Footprint bounding box
	Category   Category
	Rows       int64
	Columns    int64
}

// Bounds method for the rtreego.Spatial interface: converts the
// geographic footprint to an R-tree rectangle.
func (e ImageEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.GeoBounds.MinLon, e.GeoBounds.MinLat}
	lengths := []float64{
		e.GeoBounds.MaxLon - e.GeoBounds.MinLon,
		e.GeoBounds.MaxLat - e.GeoBounds.MinLat,
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// QueryOptions controls spatial query filtering.
type QueryOptions struct {
	// Categories filters by image category (ICAT). If non-empty, only
	// images matching one of these categories are returned.
	Categories []Category
}

// IndexedFile pairs a decoded file with the path it was loaded from.
type IndexedFile struct {
	Path string
	File *File
}

// BuildIndex creates an index over the image segments of already decoded
// files.
func BuildIndex(files []IndexedFile) *ImageIndex {
	idx := &ImageIndex{
		rtree: rtreego.NewTree(2, 25, 50),
	}
	for _, f := range files {
		for _, image := range f.File.Images() {
			corners := image.Corners()
			if corners == nil || !corners.Representation.HasGeodeticValues() {
				continue
			}
			entry := ImageEntry{
				Path:       f.Path,
				Identifier: image.Identifier(),
				Title:      image.Title(),
				GeoBounds:  corners.Bounds(),
				Category:   image.Category(),
				Rows:       image.Rows(),
				Columns:    image.Columns(),
			}
			idx.entries = append(idx.entries, entry)
			idx.rtree.Insert(entry)
		}
	}
	return idx
}

// Query returns the indexed images intersecting the given bounds,
// largest footprint first.
func (idx *ImageIndex) Query(bounds Bounds, opts QueryOptions) []ImageEntry {
	point := rtreego.Point{bounds.MinLon, bounds.MinLat}
	lengths := []float64{
		bounds.MaxLon - bounds.MinLon,
		bounds.MaxLat - bounds.MinLat,
	}
	queryRect, _ := rtreego.NewRect(point, lengths)

	var result []ImageEntry
	for _, spatial := range idx.rtree.SearchIntersect(queryRect) {
		entry := spatial.(ImageEntry)
		if len(opts.Categories) > 0 && !categoryMatch(entry.Category, opts.Categories) {
			continue
		}
		result = append(result, entry)
	}

	sort.Slice(result, func(i, j int) bool {
		bi, bj := result[i].GeoBounds, result[j].GeoBounds
		areaI := (bi.MaxLat - bi.MinLat) * (bi.MaxLon - bi.MinLon)
		areaJ := (bj.MaxLat - bj.MinLat) * (bj.MaxLon - bj.MinLon)
		if areaI != areaJ {
			return areaI > areaJ
		}
		return result[i].Identifier < result[j].Identifier
	})
	return result
}

// Count returns the total number of indexed images.
func (idx *ImageIndex) Count() int {
	return len(idx.entries)
}

// Bounds returns the union of all indexed footprints.
func (idx *ImageIndex) Bounds() Bounds {
	if len(idx.entries) == 0 {
		return Bounds{}
	}
	bounds := idx.entries[0].GeoBounds
	for _, entry := range idx.entries[1:] {
		bounds = bounds.Union(entry.GeoBounds)
	}
	return bounds
}

// All returns all indexed entries.
func (idx *ImageIndex) All() []ImageEntry {
	return idx.entries
}

func categoryMatch(category Category, allowed []Category) bool {
	for _, c := range allowed {
		if category == c {
			return true
		}
	}
	return false
}
