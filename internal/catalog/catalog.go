// Package catalog holds the daily task content and turns it into a day's tasks.
package catalog

import (
	"errors"
	"fmt"

	"holistic-daily/internal/model"
)

var (
	ErrEmptyCategory   = errors.New("catalog category has no entries")
	ErrUnknownCategory = errors.New("catalog has unknown category")
)

// Entry is a single piece of task content.
type Entry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
	LinkURL     string `yaml:"link_url"`
}

// Topic is one row of the support responder's keyword table.
type Topic struct {
	Keywords []string       `yaml:"keywords"`
	Text     string         `yaml:"text"`
	Sources  []model.Source `yaml:"sources"`
}

// Catalog is the content the generator draws from, grouped by category.
type Catalog struct {
	Tasks         map[model.Category][]Entry `yaml:"tasks"`
	SupportTopics []Topic                    `yaml:"support_topics"`
}

// Source provides the catalog to the generator.
type Source interface {
	Catalog() *Catalog
}

// Catalog lets a *Catalog act as its own Source.
func (c *Catalog) Catalog() *Catalog { return c }

// First returns the first entry of a category.
func (c *Catalog) First(cat model.Category) (Entry, bool) {
	entries := c.Tasks[cat]
	if len(entries) == 0 {
		return Entry{}, false
	}
	return entries[0], true
}

// Validate checks that every category has content and no stray categories exist.
func (c *Catalog) Validate() error {
	for cat := range c.Tasks {
		if !cat.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
		}
	}
	for _, cat := range model.Categories {
		entries := c.Tasks[cat]
		if len(entries) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyCategory, cat)
		}
		for i, e := range entries {
			if e.Title == "" {
				return fmt.Errorf("catalog %s[%d]: title is required", cat, i)
			}
		}
	}
	for i, t := range c.SupportTopics {
		if len(t.Keywords) == 0 || t.Text == "" {
			return fmt.Errorf("support topic %d: keywords and text are required", i)
		}
	}
	return nil
}
