// Package directory answers read-only queries over the business collection.
//
// A Directory is built once at startup and shared by every request handler.
// It never mutates the records it holds, so it is safe for concurrent use
// without locking. Every returned record is a deep copy. Lookups that find
// nothing return an empty slice or a false flag; nothing here returns an
// error for an absent record.
package directory

import (
	"strings"

	"github.com/lexabu/woman-owned.com/model"
)

// Directory is the in-memory query engine.
type Directory struct {
	businesses []model.Business
	cities     []model.City
	categories []model.Category
	matchers   map[string]CategoryMatcher
	bySlug     map[string]int
}

// Option customizes a Directory.
type Option func(*Directory)

// WithCategoryMatcher registers (or replaces) the matcher used for a category slug.
func WithCategoryMatcher(slug string, m CategoryMatcher) Option {
	return func(d *Directory) {
		d.matchers[strings.ToLower(slug)] = m
	}
}

// New creates a Directory over deep copies of the given records.
func New(businesses []model.Business, cities []model.City, categories []model.Category, opts ...Option) *Directory {
	d := &Directory{
		businesses: cloneAll(businesses),
		cities:     append([]model.City(nil), cities...),
		categories: append([]model.Category(nil), categories...),
		matchers:   DefaultCategoryMatchers(),
		bySlug:     make(map[string]int, len(businesses)),
	}
	for i, b := range d.businesses {
		// first record wins on duplicate slugs, mirroring a linear find
		if _, exists := d.bySlug[b.Slug]; !exists {
			d.bySlug[b.Slug] = i
		}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// cloneBusiness copies b including its services and optional sections, so
// callers can never write through to the directory's records.
func cloneBusiness(b model.Business) model.Business {
	if b.Services != nil {
		b.Services = append([]string(nil), b.Services...)
	}
	if b.SocialMedia != nil {
		social := *b.SocialMedia
		b.SocialMedia = &social
	}
	if b.Contact != nil {
		contact := *b.Contact
		b.Contact = &contact
	}
	return b
}

func cloneAll(businesses []model.Business) []model.Business {
	result := make([]model.Business, 0, len(businesses))
	for _, b := range businesses {
		result = append(result, cloneBusiness(b))
	}
	return result
}

// filter returns copies of the businesses satisfying keep, in source order.
func (d *Directory) filter(keep func(model.Business) bool) []model.Business {
	result := make([]model.Business, 0)
	for _, b := range d.businesses {
		if keep(b) {
			result = append(result, cloneBusiness(b))
		}
	}
	return result
}

func (d *Directory) inCity(citySlug string) func(model.Business) bool {
	want := strings.ToLower(citySlug)
	return func(b model.Business) bool {
		return CitySlug(b.City) == want
	}
}

func (d *Directory) inCategory(categorySlug string) func(model.Business) bool {
	m := d.matcherFor(categorySlug)
	return func(b model.Business) bool {
		return m.Match(CategorySlug(b.Category))
	}
}

func isFeatured(b model.Business) bool { return b.Featured }

// All returns every business in source order.
func (d *Directory) All() []model.Business {
	return cloneAll(d.businesses)
}

// FindBySlug is an exact, case-sensitive lookup.
func (d *Directory) FindBySlug(slug string) (model.Business, bool) {
	i, ok := d.bySlug[slug]
	if !ok {
		return model.Business{}, false
	}
	return cloneBusiness(d.businesses[i]), true
}

// FilterByCity returns businesses whose normalized city equals citySlug (case-insensitive).
func (d *Directory) FilterByCity(citySlug string) []model.Business {
	return d.filter(d.inCity(citySlug))
}

// FilterByCategory returns businesses matched by the category's matcher.
func (d *Directory) FilterByCategory(categorySlug string) []model.Business {
	return d.filter(d.inCategory(categorySlug))
}

// FilterByCityAndCategory is the conjunction of FilterByCity and FilterByCategory.
func (d *Directory) FilterByCityAndCategory(citySlug, categorySlug string) []model.Business {
	city := d.inCity(citySlug)
	category := d.inCategory(categorySlug)
	return d.filter(func(b model.Business) bool {
		return city(b) && category(b)
	})
}

// Featured returns the featured businesses.
func (d *Directory) Featured() []model.Business {
	return d.filter(isFeatured)
}

// FeaturedByCity returns the featured businesses of one city.
func (d *Directory) FeaturedByCity(citySlug string) []model.Business {
	city := d.inCity(citySlug)
	return d.filter(func(b model.Business) bool {
		return isFeatured(b) && city(b)
	})
}

// Search does a case-insensitive substring match over name, description,
// category, city and services. A blank query returns every business.
func (d *Directory) Search(query string) []model.Business {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return d.All()
	}
	return d.filter(func(b model.Business) bool {
		fields := []string{b.Name, b.Description, b.Category, b.City}
		fields = append(fields, b.Services...)
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	})
}

// TotalCount is the number of listed businesses.
func (d *Directory) TotalCount() int {
	return len(d.businesses)
}

// FeaturedCount is the number of featured businesses.
func (d *Directory) FeaturedCount() int {
	return len(d.Featured())
}

// CityCount is the number of declared cities.
func (d *Directory) CityCount() int {
	return len(d.cities)
}

// CountByCity is the number of businesses in a city.
func (d *Directory) CountByCity(citySlug string) int {
	return len(d.FilterByCity(citySlug))
}

// Cities returns the declared cities with counts recomputed from the businesses.
func (d *Directory) Cities() []model.City {
	result := make([]model.City, 0, len(d.cities))
	for _, c := range d.cities {
		c.BusinessCount = d.CountByCity(c.Slug)
		result = append(result, c)
	}
	return result
}

// CityBySlug looks up a declared city; slug is lowercased first.
func (d *Directory) CityBySlug(slug string) (model.City, bool) {
	want := strings.ToLower(slug)
	for _, c := range d.cities {
		if c.Slug == want {
			c.BusinessCount = d.CountByCity(c.Slug)
			return c, true
		}
	}
	return model.City{}, false
}

// CategoriesWithCounts returns the declared categories with counts recomputed
// through FilterByCategory. Stored counts are never trusted.
func (d *Directory) CategoriesWithCounts() []model.Category {
	result := make([]model.Category, 0, len(d.categories))
	for _, c := range d.categories {
		c.BusinessCount = len(d.FilterByCategory(c.Slug))
		result = append(result, c)
	}
	return result
}

// CategoryBySlug looks up a declared category; slug is lowercased first.
func (d *Directory) CategoryBySlug(slug string) (model.Category, bool) {
	want := strings.ToLower(slug)
	for _, c := range d.categories {
		if c.Slug == want {
			c.BusinessCount = len(d.FilterByCategory(c.Slug))
			return c, true
		}
	}
	return model.Category{}, false
}

// CityExists checks the declared city list, not the businesses.
func (d *Directory) CityExists(slug string) bool {
	_, ok := d.CityBySlug(slug)
	return ok
}

// CategoryExists checks the declared category list, not the businesses.
func (d *Directory) CategoryExists(slug string) bool {
	want := strings.ToLower(slug)
	for _, c := range d.categories {
		if c.Slug == want {
			return true
		}
	}
	return false
}

// Stats returns the aggregate counters.
func (d *Directory) Stats() model.Stats {
	return model.Stats{
		TotalBusinesses:    d.TotalCount(),
		FeaturedBusinesses: d.FeaturedCount(),
		Cities:             d.CityCount(),
		Categories:         len(d.categories),
	}
}
