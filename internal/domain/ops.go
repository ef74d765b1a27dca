package domain

// Structural operations. Each one is a pure function of
// (snapshot, intent): it clones the input document, applies the change
// to the clone and returns it. On error the input is returned
// untouched semantics-wise (callers keep their old snapshot).

// AddCategory appends a category. The category name must not already
// exist in the document. A surrogate key is assigned if the caller did
// not provide one.
func AddCategory(doc *Document, cat Category) (*Document, error) {
	if doc.CategoryByName(cat.Name) >= 0 {
		return nil, ErrDuplicateName
	}
	if cat.Key == "" {
		cat.Key = NewCategoryKey()
	}
	if cat.Icon == "" {
		cat.Icon = DefaultIcon
	}
	if cat.Services == nil {
		cat.Services = []Service{}
	}
	next := doc.Clone()
	next.Categories = append(next.Categories, cat)
	return next, nil
}

// DeleteCategory removes the category with the given key along with
// all of its services.
func DeleteCategory(doc *Document, key string) (*Document, error) {
	i := doc.CategoryByKey(key)
	if i < 0 {
		return nil, ErrCategoryNotFound
	}
	next := doc.Clone()
	next.Categories = append(next.Categories[:i], next.Categories[i+1:]...)
	return next, nil
}

// EditCategory replaces the name and icon of the category with the
// given key. The service list is preserved element-for-element.
// Renaming onto another category's name is rejected.
func EditCategory(doc *Document, key, name, icon string) (*Document, error) {
	i := doc.CategoryByKey(key)
	if i < 0 {
		return nil, ErrCategoryNotFound
	}
	if j := doc.CategoryByName(name); j >= 0 && j != i {
		return nil, ErrDuplicateName
	}
	next := doc.Clone()
	next.Categories[i].Name = name
	if icon == "" {
		icon = DefaultIcon
	}
	next.Categories[i].Icon = icon
	return next, nil
}

// ReorderCategories rearranges the categories to follow keys, which
// must be a permutation of the current key set (same length, no
// duplicates, no strangers).
func ReorderCategories(doc *Document, keys []string) (*Document, error) {
	if len(keys) != len(doc.Categories) {
		return nil, ErrBadPermutation
	}
	seen := make(map[string]bool, len(keys))
	ordered := make([]Category, 0, len(keys))
	for _, key := range keys {
		if seen[key] {
			return nil, ErrBadPermutation
		}
		seen[key] = true
		i := doc.CategoryByKey(key)
		if i < 0 {
			return nil, ErrBadPermutation
		}
		ordered = append(ordered, doc.Categories[i].clone())
	}
	next := doc.Clone()
	next.Categories = ordered
	return next, nil
}

// AddService appends a service to the category with the given key.
func AddService(doc *Document, key string, svc Service) (*Document, error) {
	i := doc.CategoryByKey(key)
	if i < 0 {
		return nil, ErrCategoryNotFound
	}
	if svc.Target == "" {
		svc.Target = TargetBlank
	}
	next := doc.Clone()
	next.Categories[i].Services = append(next.Categories[i].Services, svc)
	return next, nil
}

// EditService replaces the service at index within the category with
// the given key.
func EditService(doc *Document, key string, index int, svc Service) (*Document, error) {
	i := doc.CategoryByKey(key)
	if i < 0 {
		return nil, ErrCategoryNotFound
	}
	if index < 0 || index >= len(doc.Categories[i].Services) {
		return nil, ErrIndexOutOfRange
	}
	if svc.Target == "" {
		svc.Target = TargetBlank
	}
	next := doc.Clone()
	next.Categories[i].Services[index] = svc
	return next, nil
}

// DeleteService removes the service at index within the category with
// the given key. Remaining services shift down so the index always
// refers to the current position in the current list.
func DeleteService(doc *Document, key string, index int) (*Document, error) {
	i := doc.CategoryByKey(key)
	if i < 0 {
		return nil, ErrCategoryNotFound
	}
	if index < 0 || index >= len(doc.Categories[i].Services) {
		return nil, ErrIndexOutOfRange
	}
	next := doc.Clone()
	svcs := next.Categories[i].Services
	next.Categories[i].Services = append(svcs[:index], svcs[index+1:]...)
	return next, nil
}

// ReorderServices replaces the service list of the category with the
// given key. Service names are not unique, so permutation validity is
// checked by count only and the incoming sequence is authoritative.
func ReorderServices(doc *Document, key string, services []Service) (*Document, error) {
	i := doc.CategoryByKey(key)
	if i < 0 {
		return nil, ErrCategoryNotFound
	}
	if len(services) != len(doc.Categories[i].Services) {
		return nil, ErrBadPermutation
	}
	ordered := make([]Service, len(services))
	copy(ordered, services)
	for j := range ordered {
		if ordered[j].Target == "" {
			ordered[j].Target = TargetBlank
		}
	}
	next := doc.Clone()
	next.Categories[i].Services = ordered
	return next, nil
}
