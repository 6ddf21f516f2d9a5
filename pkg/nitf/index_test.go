package nitf

import (
	"bytes"
	"testing"
)

func decodeTestFile(t *testing.T, spec testFileSpec) *File {
	t.Helper()
	file, err := Decode(bytes.NewReader(buildTestFile(spec)), DefaultParseOptions())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return file
}

func TestBoundsIntersects(t *testing.T) {
	a := Bounds{MinLat: 37, MaxLat: 38, MinLon: -123, MaxLon: -122}

	tests := []struct {
		name string
		b    Bounds
		want bool
	}{
		{"overlapping", Bounds{MinLat: 37.5, MaxLat: 38.5, MinLon: -122.5, MaxLon: -121.5}, true},
		{"contained", Bounds{MinLat: 37.2, MaxLat: 37.8, MinLon: -122.8, MaxLon: -122.2}, true},
		{"touching edge", Bounds{MinLat: 38, MaxLat: 39, MinLon: -123, MaxLon: -122}, true},
		{"disjoint latitude", Bounds{MinLat: 40, MaxLat: 41, MinLon: -123, MaxLon: -122}, false},
		{"disjoint longitude", Bounds{MinLat: 37, MaxLat: 38, MinLon: -120, MaxLon: -119}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("expected symmetric %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{MinLat: 37, MaxLat: 38, MinLon: -123, MaxLon: -122}

	if !b.Contains(37.5, -122.5) {
		t.Error("expected interior point contained")
	}
	if !b.Contains(37, -123) {
		t.Error("expected corner point contained")
	}
	if b.Contains(39, -122.5) {
		t.Error("expected exterior point not contained")
	}
}

func TestBoundsUnion(t *testing.T) {
	a := Bounds{MinLat: 37, MaxLat: 38, MinLon: -123, MaxLon: -122}
	b := Bounds{MinLat: 36, MaxLat: 37.5, MinLon: -122.5, MaxLon: -121}

	u := a.Union(b)
	want := Bounds{MinLat: 36, MaxLat: 38, MinLon: -123, MaxLon: -121}
	if u != want {
		t.Errorf("expected %+v, got %+v", want, u)
	}
}

func TestBuildIndexAndQuery(t *testing.T) {
	files := []IndexedFile{
		{Path: "sf.ntf", File: decodeTestFile(t, testFileSpec{
			identifier: "SF",
			igeolo:     igeoloBox(37, 38, -123, -122),
		})},
		{Path: "la.ntf", File: decodeTestFile(t, testFileSpec{
			identifier: "LA",
			igeolo:     igeoloBox(33, 34, -119, -118),
		})},
		{Path: "nyc.ntf", File: decodeTestFile(t, testFileSpec{
			identifier: "NYC",
			igeolo:     igeoloBox(40, 41, -75, -73),
		})},
	}

	idx := BuildIndex(files)
	if idx.Count() != 3 {
		t.Fatalf("expected 3 indexed images, got %d", idx.Count())
	}

	hits := idx.Query(Bounds{MinLat: 37.4, MaxLat: 37.9, MinLon: -122.6, MaxLon: -122.1}, QueryOptions{})
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Identifier != "SF" {
		t.Errorf("expected SF, got %q", hits[0].Identifier)
	}
	if hits[0].Path != "sf.ntf" {
		t.Errorf("expected sf.ntf, got %q", hits[0].Path)
	}

	// West coast box covers two footprints.
	hits = idx.Query(Bounds{MinLat: 30, MaxLat: 45, MinLon: -125, MaxLon: -115}, QueryOptions{})
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}

	// Empty ocean.
	hits = idx.Query(Bounds{MinLat: 0, MaxLat: 5, MinLon: -30, MaxLon: -25}, QueryOptions{})
	if len(hits) != 0 {
		t.Errorf("expected no hits, got %d", len(hits))
	}
}

func TestBuildIndexSkipsProjectedFootprints(t *testing.T) {
	// An image without geodetic corners has no lat/lon to index by.
	files := []IndexedFile{
		{Path: "nocorners.ntf", File: decodeTestFile(t, testFileSpec{identifier: "NOGEO"})},
		{Path: "sf.ntf", File: decodeTestFile(t, testFileSpec{
			identifier: "SF",
			igeolo:     igeoloBox(37, 38, -123, -122),
		})},
	}

	idx := BuildIndex(files)
	if idx.Count() != 1 {
		t.Fatalf("expected only the geodetic image indexed, got %d", idx.Count())
	}
	if idx.All()[0].Identifier != "SF" {
		t.Errorf("expected SF, got %q", idx.All()[0].Identifier)
	}
}

func TestQueryCategoryFilter(t *testing.T) {
	files := []IndexedFile{
		{Path: "vis.ntf", File: decodeTestFile(t, testFileSpec{
			identifier: "VISIMG",
			category:   "VIS",
			igeolo:     igeoloBox(37, 38, -123, -122),
		})},
		{Path: "sar.ntf", File: decodeTestFile(t, testFileSpec{
			identifier: "SARIMG",
			category:   "SAR",
			igeolo:     igeoloBox(37, 38, -123, -122),
		})},
	}

	idx := BuildIndex(files)
	everywhere := Bounds{MinLat: -90, MaxLat: 90, MinLon: -180, MaxLon: 180}

	hits := idx.Query(everywhere, QueryOptions{Categories: []Category{CategorySyntheticApertureRadar}})
	if len(hits) != 1 {
		t.Fatalf("expected 1 SAR hit, got %d", len(hits))
	}
	if hits[0].Identifier != "SARIMG" {
		t.Errorf("expected SARIMG, got %q", hits[0].Identifier)
	}

	hits = idx.Query(everywhere, QueryOptions{})
	if len(hits) != 2 {
		t.Errorf("expected 2 unfiltered hits, got %d", len(hits))
	}
}

func TestIndexBounds(t *testing.T) {
	files := []IndexedFile{
		{Path: "sf.ntf", File: decodeTestFile(t, testFileSpec{
			identifier: "SF",
			igeolo:     igeoloBox(37, 38, -123, -122),
		})},
		{Path: "nyc.ntf", File: decodeTestFile(t, testFileSpec{
			identifier: "NYC",
			igeolo:     igeoloBox(40, 41, -75, -73),
		})},
	}

	idx := BuildIndex(files)
	bounds := idx.Bounds()
	want := Bounds{MinLat: 37, MaxLat: 41, MinLon: -123, MaxLon: -73}
	if bounds != want {
		t.Errorf("expected %+v, got %+v", want, bounds)
	}

	empty := BuildIndex(nil)
	if empty.Bounds() != (Bounds{}) {
		t.Errorf("expected zero bounds for empty index, got %+v", empty.Bounds())
	}
}

func TestQueryOrdersByFootprintArea(t *testing.T) {
	files := []IndexedFile{
		{Path: "small.ntf", File: decodeTestFile(t, testFileSpec{
			identifier: "SMALL",
			igeolo:     igeoloBox(37, 38, -123, -122),
		})},
		{Path: "large.ntf", File: decodeTestFile(t, testFileSpec{
			identifier: "LARGE",
			igeolo:     igeoloBox(35, 40, -125, -120),
		})},
	}

	idx := BuildIndex(files)
	hits := idx.Query(Bounds{MinLat: 37, MaxLat: 38, MinLon: -123, MaxLon: -122}, QueryOptions{})
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Identifier != "LARGE" || hits[1].Identifier != "SMALL" {
		t.Errorf("expected LARGE before SMALL, got %q, %q", hits[0].Identifier, hits[1].Identifier)
	}
}
