package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/nitf/pkg/nitf"
)

func main() {
	// Register decoders for the extension tags we care about. Tags
	// without a handler still appear in the results as raw blobs.
	registry := nitf.NewTreRegistry()

	// USE00A exploitation usability (STDI-0002), first few fields.
	registry.RegisterFixed("USE00A", []nitf.TreFieldSpec{
		{Name: "ANGLE_TO_NORTH", Length: 3},
		{Name: "MEAN_GSD", Length: 5, Trim: true},
		{Name: "RESERVED1", Length: 1},
		{Name: "DYNAMIC_RANGE", Length: 5, Trim: true},
	})

	parser := nitf.NewParser()
	file, err := parser.ParseWithOptions("overhead.ntf", nitf.ParseOptions{
		Registry: registry,
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, image := range file.Images() {
		fmt.Printf("Image %s: %d extension records\n",
			image.Identifier(), len(image.Tres()))

		for _, tre := range image.Tres() {
			fmt.Printf("  %s (%s, %d bytes)\n", tre.Tag, tre.Source, len(tre.Raw))

			if len(tre.Fields) == 0 {
				continue // unregistered tag, payload in tre.Raw
			}
			for _, field := range tre.Fields {
				fmt.Printf("    %s = %q\n", field.Name, field.Value)
			}
		}

		if gsd, ok := findField(image.Tres(), "USE00A", "MEAN_GSD"); ok {
			fmt.Printf("  Mean GSD: %s inches\n", gsd)
		}
	}
}

func findField(tres []nitf.Tre, tag string, name string) (string, bool) {
	for i := range tres {
		if tres[i].Tag != tag {
			continue
		}
		if value, ok := tres[i].Field(name); ok {
			return value, true
		}
	}
	return "", false
}
