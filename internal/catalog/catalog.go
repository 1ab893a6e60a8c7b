package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a catalog fails validation.
var ErrInvalid = errors.New("invalid catalog")

// Package is a funeral service package offered to families.
type Package struct {
	Name   string `yaml:"name" json:"name"`
	Amount int64  `yaml:"amount" json:"amount"`
}

// Theme is a decor style that can be applied to any package.
type Theme struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

func (t Theme) String() string {
	return t.Name + " – " + t.Description
}

// Catalog is the reference list of packages and themes the assistant answers from.
// Packages are kept in the order they are presented to users.
type Catalog struct {
	Currency string    `yaml:"currency" json:"currency"`
	Packages []Package `yaml:"packages" json:"packages"`
	Themes   []Theme   `yaml:"themes" json:"themes"`
}

// Default returns the standard EternalpEASE catalog.
func Default() *Catalog {
	return &Catalog{
		Currency: "₱",
		Packages: []Package{
			{Name: "Package A", Amount: 30000},
			{Name: "Package B", Amount: 40000},
			{Name: "Package C", Amount: 50000},
			{Name: "Package D", Amount: 60000},
			{Name: "Package E", Amount: 70000},
			{Name: "Package F", Amount: 80000},
			{Name: "Package G", Amount: 90000},
			{Name: "Package H", Amount: 100000},
			{Name: "Package I", Amount: 120000},
			{Name: "Package J", Amount: 250000},
		},
		Themes: []Theme{
			{Name: "Natural", Description: "nature-inspired, with flowers, greenery, and peaceful landscapes."},
			{Name: "Classic", Description: "timeless style with formal arrangements and neutral palettes."},
			{Name: "Modern", Description: "minimalist designs using clean lines and soft colors."},
			{Name: "Traditional", Description: "classic Filipino motifs, candles, and heritage-inspired decor."},
		},
	}
}

// Load reads a YAML catalog from path. A missing currency defaults to ₱.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if c.Currency == "" {
		c.Currency = "₱"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the catalog has at least one package, that package names are
// unique ignoring case, and that every amount is positive.
func (c *Catalog) Validate() error {
	if len(c.Packages) == 0 {
		return fmt.Errorf("%w: no packages", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Packages))
	for _, p := range c.Packages {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if key == "" {
			return fmt.Errorf("%w: package without a name", ErrInvalid)
		}
		if seen[key] {
			return fmt.Errorf("%w: duplicate package %q", ErrInvalid, p.Name)
		}
		seen[key] = true
		if p.Amount <= 0 {
			return fmt.Errorf("%w: package %q has non-positive amount %d", ErrInvalid, p.Name, p.Amount)
		}
	}
	for _, t := range c.Themes {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%w: theme without a name", ErrInvalid)
		}
	}
	return nil
}

// Find looks a package up by name, ignoring case and surrounding spaces.
func (c *Catalog) Find(name string) (Package, bool) {
	name = strings.TrimSpace(name)
	for _, p := range c.Packages {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Package{}, false
}

func (c *Catalog) Cheapest() (Package, bool) {
	return c.pick(func(a, b int64) bool { return a < b })
}

func (c *Catalog) MostExpensive() (Package, bool) {
	return c.pick(func(a, b int64) bool { return a > b })
}

// pick returns the first package that wins under better; ties keep catalog order.
func (c *Catalog) pick(better func(a, b int64) bool) (Package, bool) {
	if len(c.Packages) == 0 {
		return Package{}, false
	}
	best := c.Packages[0]
	for _, p := range c.Packages[1:] {
		if better(p.Amount, best.Amount) {
			best = p
		}
	}
	return best, true
}

// FormatPrice renders an amount with the catalog currency and thousands separators,
// e.g. ₱250,000.
func (c *Catalog) FormatPrice(amount int64) string {
	return c.Currency + humanize.Comma(amount)
}

func (c *Catalog) Price(p Package) string {
	return c.FormatPrice(p.Amount)
}
