package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/nitf/pkg/nitf"
)

func main() {
	// Create parser
	parser := nitf.NewParser()

	// Parse NITF file
	file, err := parser.Parse("overhead.ntf")
	if err != nil {
		log.Fatal(err)
	}

	// Print file info
	fmt.Printf("Version: %s\n", file.Version())
	fmt.Printf("Title: %s\n", file.Title())
	fmt.Printf("Origin station: %s\n", file.OriginStationId())
	fmt.Printf("Images: %d\n", file.ImageCount())

	// Walk the image segments
	for i, image := range file.Images() {
		fmt.Printf("\nImage %d: %s\n", i+1, image.Identifier())
		fmt.Printf("  Size: %dx%d\n", image.Columns(), image.Rows())
		fmt.Printf("  Category: %s\n", image.Category())
		fmt.Printf("  Compression: %s\n", image.Compression())
		fmt.Printf("  Bands: %d\n", len(image.Bands()))

		if image.HasCorners() {
			bounds := image.Corners().Bounds()
			fmt.Printf("  Footprint: [%.4f,%.4f] to [%.4f,%.4f]\n",
				bounds.MinLon, bounds.MinLat,
				bounds.MaxLon, bounds.MaxLat)
		}
	}
}
