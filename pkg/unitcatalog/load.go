// SPDX-License-Identifier: MPL-2.0

package unitcatalog

import (
	_ "embed"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mcgowans/length/internal/cueutil"
	"github.com/mcgowans/length/pkg/length"
)

//go:embed catalog_schema.cue
var catalogSchema []byte

type (
	// Definition describes a custom unit in a CUE document or viper config.
	Definition struct {
		Name         string  `json:"name" mapstructure:"name"`
		Abbreviation string  `json:"abbreviation" mapstructure:"abbreviation"`
		Multiplier   float64 `json:"multiplier" mapstructure:"multiplier"`
	}

	catalogDocument struct {
		Units []Definition `json:"units"`
	}
)

// Unit builds the unit described by d. Every call returns a new *length.Unit.
func (d Definition) Unit() *length.Unit {
	return length.NewUnit(d.Multiplier, d.Name, d.Abbreviation)
}

// LoadCUE validates data against the #Catalog schema and registers every
// unit it defines. filename only labels error messages; nothing is read from
// disk. Registration is all or nothing.
func (c *Catalog) LoadCUE(data []byte, filename string) ([]*length.Unit, error) {
	doc, err := cueutil.ParseAndDecode[catalogDocument](catalogSchema, data, "#Catalog",
		cueutil.WithFilename(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to load unit catalog: %w", err)
	}
	return c.registerDefinitions(doc.Units)
}

// LoadViper decodes the list of definitions stored under key in v and
// registers them. A missing key registers nothing.
func (c *Catalog) LoadViper(v *viper.Viper, key string) ([]*length.Unit, error) {
	var defs []Definition
	if err := v.UnmarshalKey(key, &defs); err != nil {
		return nil, fmt.Errorf("failed to decode unit definitions at %q: %w", key, err)
	}
	return c.registerDefinitions(defs)
}

func (c *Catalog) registerDefinitions(defs []Definition) ([]*length.Unit, error) {
	units := make([]*length.Unit, 0, len(defs))
	for _, d := range defs {
		units = append(units, d.Unit())
	}
	if err := c.add(units); err != nil {
		return nil, err
	}
	return units, nil
}
