// SPDX-License-Identifier: MPL-2.0

package unitcatalog

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/mcgowans/length/pkg/length"
)

// Catalog maps unit names and abbreviations to units. Keys are matched case
// insensitively with surrounding whitespace ignored. A Catalog is safe for
// concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	byKey  map[string]*length.Unit
	units  []*length.Unit
	logger *log.Logger
}

// New returns a Catalog holding the predefined units of package length,
// unless WithoutPredefined is given.
func New(opts ...Option) *Catalog {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	c := &Catalog{
		byKey:  make(map[string]*length.Unit),
		logger: options.logger,
	}
	if options.predefined {
		if err := c.add(length.Predefined()); err != nil {
			panic(fmt.Sprintf("unitcatalog: predefined units do not register: %v", err))
		}
	}
	return c
}

// Register adds u under its name and its abbreviation. Registering a unit
// that is already present is a no-op.
//
// Register fails with an *InvalidUnitError for a nil unit, a blank name or
// abbreviation, or a multiplier that is not a positive finite number, and
// with a *DuplicateUnitError when either key belongs to another unit.
func (c *Catalog) Register(u *length.Unit) error {
	return c.add([]*length.Unit{u})
}

// RegisterAll registers every unit of units, or none of them if any one
// fails the checks of Register.
func (c *Catalog) RegisterAll(units []*length.Unit) error {
	return c.add(units)
}

// Lookup returns the unit registered under key, which may be a name or an
// abbreviation.
func (c *Catalog) Lookup(key string) (*length.Unit, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	u, ok := c.byKey[normalizeKey(key)]
	return u, ok
}

// MustLookup is like Lookup but panics when key is unknown.
func (c *Catalog) MustLookup(key string) *length.Unit {
	u, ok := c.Lookup(key)
	if !ok {
		panic(&UnknownUnitError{Key: key})
	}
	return u
}

// Units returns the registered units in registration order.
func (c *Catalog) Units() []*length.Unit {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*length.Unit, len(c.units))
	copy(out, c.units)
	return out
}

// Length returns a Length of value in the unit registered under key.
func (c *Catalog) Length(value float64, key string) (length.Length, error) {
	u, ok := c.Lookup(key)
	if !ok {
		return length.Length{}, &UnknownUnitError{Key: key}
	}
	return length.New(value, u)
}

// add checks every unit against the catalog and against the rest of the
// batch before any of them is stored.
func (c *Catalog) add(units []*length.Unit) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	staged := make(map[string]*length.Unit)
	var fresh []*length.Unit
	for _, u := range units {
		if err := validateUnit(u); err != nil {
			return err
		}

		keys := unitKeys(u)
		if c.registeredLocked(u, keys) {
			continue
		}
		for _, key := range keys {
			if existing, ok := c.byKey[key]; ok && existing != u {
				return &DuplicateUnitError{Key: key, Existing: existing}
			}
			if existing, ok := staged[key]; ok && existing != u {
				return &DuplicateUnitError{Key: key, Existing: existing}
			}
		}
		if staged[keys[0]] == u {
			continue
		}
		for _, key := range keys {
			staged[key] = u
		}
		fresh = append(fresh, u)
	}

	for _, u := range fresh {
		for _, key := range unitKeys(u) {
			c.byKey[key] = u
		}
		c.units = append(c.units, u)
		c.logger.Debug("registered unit",
			"name", u.Name(),
			"abbreviation", u.Abbreviation(),
			"multiplier", u.Multiplier())
	}
	return nil
}

// registeredLocked reports whether u itself is already stored under all of
// keys. c.mu must be held.
func (c *Catalog) registeredLocked(u *length.Unit, keys []string) bool {
	for _, key := range keys {
		if c.byKey[key] != u {
			return false
		}
	}
	return true
}

func validateUnit(u *length.Unit) error {
	switch {
	case u == nil:
		return &InvalidUnitError{Reason: "unit is nil"}
	case strings.TrimSpace(u.Name()) == "":
		return &InvalidUnitError{Unit: u, Reason: "name must not be blank"}
	case strings.TrimSpace(u.Abbreviation()) == "":
		return &InvalidUnitError{Unit: u, Reason: "abbreviation must not be blank"}
	}

	m := u.Multiplier()
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return &InvalidUnitError{Unit: u, Reason: fmt.Sprintf("multiplier %g must be a positive finite number", m)}
	}
	return nil
}

// unitKeys returns the lookup keys of u; a unit whose name and abbreviation
// normalize alike has a single key.
func unitKeys(u *length.Unit) []string {
	name := normalizeKey(u.Name())
	abbr := normalizeKey(u.Abbreviation())
	if name == abbr {
		return []string{name}
	}
	return []string{name, abbr}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
