package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/nitf/pkg/nitf"
)

func main() {
	// Index every NITF file under a directory tree. Files that fail to
	// decode are skipped and reported, not fatal.
	idx, errs := nitf.BuildIndexFromDir("./imagery", nitf.NewParser(), nitf.LoadOptions{
		Parallel:   true,
		SkipErrors: true,
		Progress: func(loaded, total int) {
			fmt.Printf("\rLoading: %d/%d", loaded, total)
		},
		ErrorLog: os.Stderr,
	})
	fmt.Println()
	if idx == nil {
		log.Fatalf("indexing failed: %v", errs)
	}
	if len(errs) > 0 {
		fmt.Printf("Skipped %d files due to errors\n", len(errs))
	}

	fmt.Printf("Indexed %d images\n", idx.Count())
	coverage := idx.Bounds()
	fmt.Printf("Coverage: [%.4f,%.4f] to [%.4f,%.4f]\n\n",
		coverage.MinLon, coverage.MinLat,
		coverage.MaxLon, coverage.MaxLat)

	// Find imagery covering a region of interest
	roi := nitf.Bounds{
		MinLat: 37.5, MaxLat: 38.0,
		MinLon: -122.5, MaxLon: -122.0,
	}
	hits := idx.Query(roi, nitf.QueryOptions{})
	fmt.Printf("%d images cover the region of interest:\n", len(hits))
	for _, hit := range hits {
		fmt.Printf("  %s (%s) %dx%d %s\n",
			hit.Identifier, hit.Category, hit.Columns, hit.Rows, hit.Path)
	}

	// Same query restricted to radar imagery
	radar := idx.Query(roi, nitf.QueryOptions{
		Categories: []nitf.Category{nitf.CategorySyntheticApertureRadar},
	})
	fmt.Printf("\n%d of them are SAR\n", len(radar))
}
