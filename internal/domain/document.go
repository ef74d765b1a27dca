package domain

import "github.com/google/uuid"

const (
	// DefaultTitle is used when a document carries no title.
	DefaultTitle = "HomeLab Dashboard"

	// DefaultColumns is the layout column count fallback.
	DefaultColumns = 4

	// MaxColumns is the largest meaningful layout column count.
	MaxColumns = 6

	// DefaultIcon is the generic folder token used when a category has no icon.
	DefaultIcon = "fa-solid fa-folder"
)

// Link targets for services.
const (
	TargetBlank = "_blank"
	TargetSelf  = "_self"
)

// Document is the canonical dashboard configuration.
//
// It is treated as an immutable snapshot: every structural operation
// produces a fresh Document and never touches the one it was given.
// The persisted field names (`items`, `list`) are a compatibility
// contract with the SPA and any hand-written bootstrap file.
type Document struct {
	// Title is the dashboard display title. Optional; DisplayTitle
	// falls back to DefaultTitle.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Columns is the number of layout columns (1-6 meaningful).
	// DisplayColumns falls back to DefaultColumns when out of range.
	Columns int `json:"columns,omitempty" yaml:"columns,omitempty"`

	// Categories is the ordered list of category groups.
	// Order is the display order.
	Categories []Category `json:"items" yaml:"items"`
}

// Category is a named, iconed group of services.
type Category struct {
	// Key is the stable surrogate identifier generated at creation.
	// All structural operations address categories by Key, so a rename
	// is an update in place, never a delete+insert. Key is internal
	// only and never serialized.
	Key string `json:"-" yaml:"-"`

	// Name is the display name. Unique within the document at all
	// times; the only identity written to storage.
	Name string `json:"name" yaml:"name"`

	// Icon is an icon token (ex: "fa-solid fa-tv"). Optional.
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`

	// Services is the ordered list of shortcuts in this category.
	Services []Service `json:"list" yaml:"list"`
}

// Service is a single shortcut entry. Services have no surrogate key:
// identity within a category is positional, which is safe because the
// edit session serializes all mutations through a single active modal.
type Service struct {
	Name   string `json:"name" yaml:"name"`
	Logo   string `json:"logo,omitempty" yaml:"logo,omitempty"`
	URL    string `json:"url" yaml:"url"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
}

// NewCategoryKey generates a surrogate category key.
func NewCategoryKey() string {
	return uuid.NewString()
}

// DisplayTitle returns the title with the default fallback applied.
func (d *Document) DisplayTitle() string {
	if d.Title == "" {
		return DefaultTitle
	}
	return d.Title
}

// DisplayColumns returns the column count with the default fallback applied.
func (d *Document) DisplayColumns() int {
	if d.Columns < 1 || d.Columns > MaxColumns {
		return DefaultColumns
	}
	return d.Columns
}

// Clone returns a deep copy of the document. Category and service
// slices are copied so mutations on the clone never leak into the
// original snapshot.
func (d *Document) Clone() *Document {
	out := &Document{
		Title:   d.Title,
		Columns: d.Columns,
	}
	if d.Categories != nil {
		out.Categories = make([]Category, len(d.Categories))
		for i, cat := range d.Categories {
			out.Categories[i] = cat.clone()
		}
	}
	return out
}

func (c Category) clone() Category {
	out := c
	if c.Services != nil {
		out.Services = make([]Service, len(c.Services))
		copy(out.Services, c.Services)
	}
	return out
}

// CategoryByKey returns the index of the category with the given
// surrogate key, or -1 if absent.
func (d *Document) CategoryByKey(key string) int {
	for i := range d.Categories {
		if d.Categories[i].Key == key {
			return i
		}
	}
	return -1
}

// CategoryByName returns the index of the category with the given
// display name, or -1 if absent.
func (d *Document) CategoryByName(name string) int {
	for i := range d.Categories {
		if d.Categories[i].Name == name {
			return i
		}
	}
	return -1
}

// Normalize applies fallbacks in place and assigns surrogate keys to
// categories that lack one. It is called on documents entering the
// system from outside (storage, import, bootstrap) before they become
// the current snapshot. Fresh keys are fine there: external documents
// carry no keys, and in-flight edit sessions never survive a wholesale
// document replacement.
func (d *Document) Normalize() {
	if d.Categories == nil {
		d.Categories = []Category{}
	}
	for i := range d.Categories {
		cat := &d.Categories[i]
		if cat.Key == "" {
			cat.Key = NewCategoryKey()
		}
		if cat.Icon == "" {
			cat.Icon = DefaultIcon
		}
		if cat.Services == nil {
			cat.Services = []Service{}
		}
		for j := range cat.Services {
			if cat.Services[j].Target == "" {
				cat.Services[j].Target = TargetBlank
			}
		}
	}
}
