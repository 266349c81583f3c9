package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"grocery-app/internal/models"
	"grocery-app/internal/validation"
)

// SeedFile is the YAML document accepted by LoadSeedFile:
//
//	recipes:
//	  - name: Classic Pancakes
//	    description: ...
//	    ingredients: [...]
//	    instructions: [...]
//	    imageUrl: https://...
//	    preparationTime: 20
type SeedFile struct {
	Recipes []models.InsertRecipe `yaml:"recipes"`
}

// LoadSeedFile reads and validates the recipes in a YAML seed file.
func LoadSeedFile(path string) ([]models.InsertRecipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	recipes, err := ParseSeed(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return recipes, nil
}

// ParseSeed decodes a seed document and validates every recipe in it.
// Validation failures of all recipes are reported together.
func ParseSeed(r io.Reader) ([]models.InsertRecipe, error) {
	var doc SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	v := validation.New()
	var combined validation.Error
	for i, rec := range doc.Recipes {
		err := v.Struct(rec)
		if err == nil {
			continue
		}
		var verr *validation.Error
		if !errors.As(err, &verr) {
			return nil, err
		}
		combined.Issues = append(combined.Issues, verr.WithPrefix("recipes", strconv.Itoa(i)).Issues...)
	}
	if len(combined.Issues) > 0 {
		return nil, &combined
	}
	return doc.Recipes, nil
}
