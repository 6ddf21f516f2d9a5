package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/beetlebugorg/nitf/pkg/nitf"
)

func safeParse(path string) (*nitf.File, error) {
	parser := nitf.NewParser()

	file, err := parser.Parse(path)
	if err != nil {
		// Check if file exists
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("imagery file not found: %s", path)
		}

		// Classify the decode failure
		switch {
		case nitf.IsFormatMismatch(err):
			log.Printf("%s is not a NITF file: %v", path, err)
		case nitf.IsTruncated(err):
			log.Printf("%s is cut short: %v", path, err)
		case nitf.IsMalformedField(err):
			log.Printf("%s has a corrupt header field: %v", path, err)
		case nitf.IsUnsupportedRepresentation(err):
			log.Printf("%s uses an unsupported coordinate encoding: %v", path, err)
		case nitf.IsExtensionLengthMismatch(err):
			log.Printf("%s has inconsistent extension lengths: %v", path, err)
		default:
			log.Printf("Failed to parse %s: %v", path, err)
		}
		return nil, err
	}

	// Sanity-check the decoded structure
	if file.ImageCount() == 0 {
		log.Printf("Warning: %s contains no image segments", path)
	}
	for _, image := range file.Images() {
		if image.DateTime().IsZero() {
			log.Printf("Warning: image %s has an incomplete acquisition time (%q)",
				image.Identifier(), image.DateTime().Raw)
		}
	}

	return file, nil
}

func main() {
	file, err := safeParse("overhead.ntf")
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	fmt.Printf("Successfully loaded: %s\n", file.Title())
	fmt.Printf("Images: %d\n", file.ImageCount())

	// Try to parse a non-existent file
	_, err = safeParse("NONEXISTENT.ntf")
	if err != nil {
		log.Printf("Expected error: %v", err)
	}
}
