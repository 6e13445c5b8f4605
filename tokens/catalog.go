package tokens

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	FreeformTitle = "Freeform"
	descMinor     = "desc"
	outpathMinor  = "outpath"
)

var (
	// a major whose minors are exactly these is a data provenance token
	provenanceMinors = []string{"Copy", "Primary", "Ref"}

	renames = map[string]string{
		"Medford": "MEDFORD",
	}
)

// Catalog maps each major token to its sorted minor tokens.
type Catalog map[string][]string

func Build(schema *Schema) (Catalog, error) {
	if schema == nil || schema.Properties == nil {
		return nil, fmt.Errorf("%w: no properties", ErrSchema)
	}

	catalog := make(Catalog)

	for key, prop := range schema.Properties {
		title := prop.Title

		if title == "" {
			title = key
		}

		if title == FreeformTitle {
			continue
		}

		_, def, err := schema.Resolve(prop)

		if err != nil {
			return nil, err
		}

		minors := extractMinors(def)

		if !slices.Equal(minors, provenanceMinors) {
			catalog[title] = minors
			continue
		}

		err = catalog.addProvenance(schema, title, def)

		if err != nil {
			return nil, err
		}
	}

	for from, to := range renames {
		if minors, ok := catalog[from]; ok {
			delete(catalog, from)
			catalog[to] = minors
		}
	}

	return catalog, nil
}

func Default() (Catalog, error) {
	return Build(DefaultSchema())
}

func (catalog Catalog) addProvenance(schema *Schema, major string, def Definition) error {
	all := make(map[string]struct{})

	for _, prop := range def.Properties {
		defName, variant, err := schema.Resolve(prop)

		if err != nil {
			return err
		}

		parts := strings.Split(defName, "_")

		if len(parts) < 2 {
			return fmt.Errorf("%w: provenance definition %q has no variant suffix", ErrSchema, defName)
		}

		name := strings.Join(append([]string{major}, parts[1:]...), "_")
		minors := extractMinors(variant)
		catalog[name] = minors

		for _, minor := range minors {
			all[minor] = struct{}{}
		}
	}

	catalog[major] = slices.Sorted(maps.Keys(all))

	return nil
}

func extractMinors(def Definition) []string {
	_, hasDestination := def.Properties["Destination"]
	_, hasUri := def.Properties["URI"]
	minors := make([]string, 0, len(def.Properties))

	for name := range def.Properties {
		if name == descMinor {
			continue
		}

		if name == outpathMinor && (hasDestination || hasUri) {
			continue
		}

		minors = append(minors, name)
	}

	slices.Sort(minors)

	return minors
}

func (catalog Catalog) Majors() []string {
	return slices.Sorted(maps.Keys(catalog))
}

func (catalog Catalog) Minors(major string) (minors []string, ok bool) {
	minors, ok = catalog[major]
	return
}
