package domain

import (
	"errors"
	"reflect"
	"testing"
)

func mediaDoc() *Document {
	doc := &Document{
		Title:   "Lab",
		Columns: 3,
		Categories: []Category{
			{
				Key:  "k-media",
				Name: "Media",
				Icon: "fa-solid fa-film",
				Services: []Service{
					{Name: "Jellyfin", Logo: "x", URL: "http://a", Target: TargetBlank},
				},
			},
		},
	}
	return doc
}

func TestAddCategory(t *testing.T) {
	tests := []struct {
		name    string
		cat     Category
		wantErr error
		wantLen int
	}{
		{
			name:    "appends new category",
			cat:     Category{Name: "Network"},
			wantLen: 2,
		},
		{
			name:    "rejects duplicate name",
			cat:     Category{Name: "Media"},
			wantErr: ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mediaDoc()
			next, err := AddCategory(doc, tt.cat)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddCategory() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(next.Categories) != tt.wantLen {
				t.Errorf("len(categories) = %d, want %d", len(next.Categories), tt.wantLen)
			}
			appended := next.Categories[len(next.Categories)-1]
			if appended.Name != tt.cat.Name {
				t.Errorf("appended category = %q, want %q", appended.Name, tt.cat.Name)
			}
			if appended.Key == "" {
				t.Error("appended category has no surrogate key")
			}
			if appended.Icon != DefaultIcon {
				t.Errorf("icon fallback = %q, want %q", appended.Icon, DefaultIcon)
			}
			// Input snapshot must be untouched.
			if len(doc.Categories) != 1 {
				t.Errorf("input document mutated: len = %d", len(doc.Categories))
			}
		})
	}
}

func TestAddThenDeleteCategoryRoundTrip(t *testing.T) {
	doc := mediaDoc()

	next, err := AddCategory(doc, Category{Name: "Network", Key: "k-net"})
	if err != nil {
		t.Fatalf("AddCategory() error = %v", err)
	}
	back, err := DeleteCategory(next, "k-net")
	if err != nil {
		t.Fatalf("DeleteCategory() error = %v", err)
	}

	if !reflect.DeepEqual(back, doc) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, doc)
	}
}

func TestDeleteCategory(t *testing.T) {
	doc := mediaDoc()

	next, err := DeleteCategory(doc, "k-media")
	if err != nil {
		t.Fatalf("DeleteCategory() error = %v", err)
	}
	if len(next.Categories) != 0 {
		t.Errorf("len(categories) = %d, want 0", len(next.Categories))
	}
	// Cascading: no service of the deleted category is reachable.
	for _, cat := range next.Categories {
		if cat.Name == "Media" {
			t.Error("deleted category still present")
		}
	}

	if _, err := DeleteCategory(doc, "k-missing"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("missing key error = %v, want ErrCategoryNotFound", err)
	}
}

func TestEditCategory(t *testing.T) {
	doc := mediaDoc()

	next, err := EditCategory(doc, "k-media", "Media Servers", "fa-solid fa-tv")
	if err != nil {
		t.Fatalf("EditCategory() error = %v", err)
	}

	got := next.Categories[0]
	if got.Name != "Media Servers" || got.Icon != "fa-solid fa-tv" {
		t.Errorf("edited category = %q/%q", got.Name, got.Icon)
	}
	if got.Key != "k-media" {
		t.Error("surrogate key changed on rename")
	}
	if !reflect.DeepEqual(got.Services, doc.Categories[0].Services) {
		t.Errorf("services changed: got %+v, want %+v", got.Services, doc.Categories[0].Services)
	}
	if doc.Categories[0].Name != "Media" {
		t.Error("input document mutated")
	}
}

func TestEditCategoryRejectsNameCollision(t *testing.T) {
	doc := mediaDoc()
	doc.Categories = append(doc.Categories, Category{Key: "k-net", Name: "Network"})

	if _, err := EditCategory(doc, "k-net", "Media", ""); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("error = %v, want ErrDuplicateName", err)
	}
	// Renaming to its own current name stays legal.
	if _, err := EditCategory(doc, "k-net", "Network", ""); err != nil {
		t.Errorf("self-rename error = %v", err)
	}
}

func TestReorderCategories(t *testing.T) {
	doc := mediaDoc()
	doc.Categories = append(doc.Categories,
		Category{Key: "k-net", Name: "Network"},
		Category{Key: "k-mon", Name: "Monitoring"},
	)

	tests := []struct {
		name    string
		keys    []string
		wantErr error
		want    []string
	}{
		{
			name: "valid permutation",
			keys: []string{"k-mon", "k-media", "k-net"},
			want: []string{"Monitoring", "Media", "Network"},
		},
		{
			name:    "missing entry",
			keys:    []string{"k-media", "k-net"},
			wantErr: ErrBadPermutation,
		},
		{
			name:    "duplicated entry",
			keys:    []string{"k-media", "k-media", "k-net"},
			wantErr: ErrBadPermutation,
		},
		{
			name:    "stranger key",
			keys:    []string{"k-media", "k-net", "k-other"},
			wantErr: ErrBadPermutation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := ReorderCategories(doc, tt.keys)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReorderCategories() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			var names []string
			for _, cat := range next.Categories {
				names = append(names, cat.Name)
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Errorf("order = %v, want %v", names, tt.want)
			}
		})
	}
}

func TestAddService(t *testing.T) {
	doc := mediaDoc()

	next, err := AddService(doc, "k-media", Service{Name: "Sonarr", URL: "http://b", Logo: "y"})
	if err != nil {
		t.Fatalf("AddService() error = %v", err)
	}

	svcs := next.Categories[0].Services
	if len(svcs) != 2 {
		t.Fatalf("len(services) = %d, want 2", len(svcs))
	}
	if svcs[0].Name != "Jellyfin" || svcs[1].Name != "Sonarr" {
		t.Errorf("order = [%s, %s], want [Jellyfin, Sonarr]", svcs[0].Name, svcs[1].Name)
	}
	if svcs[1].Target != TargetBlank {
		t.Errorf("target fallback = %q, want %q", svcs[1].Target, TargetBlank)
	}
	if len(doc.Categories[0].Services) != 1 {
		t.Error("input document mutated")
	}

	if _, err := AddService(doc, "k-missing", Service{Name: "x", URL: "y"}); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("missing category error = %v, want ErrCategoryNotFound", err)
	}
}

func TestEditService(t *testing.T) {
	doc := mediaDoc()

	next, err := EditService(doc, "k-media", 0, Service{Name: "Jellyfin", URL: "http://new", Target: TargetSelf})
	if err != nil {
		t.Fatalf("EditService() error = %v", err)
	}
	got := next.Categories[0].Services[0]
	if got.URL != "http://new" || got.Target != TargetSelf {
		t.Errorf("edited service = %+v", got)
	}
	if doc.Categories[0].Services[0].URL != "http://a" {
		t.Error("input document mutated")
	}

	if _, err := EditService(doc, "k-media", 1, Service{Name: "x", URL: "y"}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("out of range error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := EditService(doc, "k-media", -1, Service{Name: "x", URL: "y"}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("negative index error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestDeleteServiceSingleElement(t *testing.T) {
	doc := mediaDoc()

	next, err := DeleteService(doc, "k-media", 0)
	if err != nil {
		t.Fatalf("DeleteService() error = %v", err)
	}
	if len(next.Categories[0].Services) != 0 {
		t.Errorf("len(services) = %d, want 0", len(next.Categories[0].Services))
	}
	if len(doc.Categories[0].Services) != 1 {
		t.Error("input document mutated")
	}

	if _, err := DeleteService(doc, "k-media", 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("out of range error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestReorderServices(t *testing.T) {
	doc := mediaDoc()
	var err error
	doc, err = AddService(doc, "k-media", Service{Name: "Sonarr", URL: "http://b"})
	if err != nil {
		t.Fatalf("AddService() error = %v", err)
	}

	reversed := []Service{
		doc.Categories[0].Services[1],
		doc.Categories[0].Services[0],
	}
	next, err := ReorderServices(doc, "k-media", reversed)
	if err != nil {
		t.Fatalf("ReorderServices() error = %v", err)
	}
	svcs := next.Categories[0].Services
	if svcs[0].Name != "Sonarr" || svcs[1].Name != "Jellyfin" {
		t.Errorf("order = [%s, %s], want [Sonarr, Jellyfin]", svcs[0].Name, svcs[1].Name)
	}

	if _, err := ReorderServices(doc, "k-media", reversed[:1]); !errors.Is(err, ErrBadPermutation) {
		t.Errorf("count mismatch error = %v, want ErrBadPermutation", err)
	}
}
