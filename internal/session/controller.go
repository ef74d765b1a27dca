// Package session owns the current document snapshot and the editing
// state machine that gates structural mutations.
package session

import (
	"errors"
	"sync"

	"github.com/homegrid/homegrid/internal/domain"
	"github.com/homegrid/homegrid/internal/logger"
)

// Session errors.
var (
	ErrEditModeOff   = errors.New("edit mode is off")
	ErrModalMismatch = errors.New("no matching editing session is open")
)

// State identifies which editing modal is open. States are mutually
// exclusive: opening one cancels whatever was open before.
type State string

const (
	StateIdle            State = "idle"
	StateAddingCategory  State = "adding_category"
	StateEditingCategory State = "editing_category"
	StateAddingService   State = "adding_service"
	StateEditingService  State = "editing_service"
)

// Modal describes the active editing state. CategoryKey is set for the
// category-scoped states; ServiceIndex is -1 unless a service edit is
// open.
type Modal struct {
	State        State  `json:"state"`
	CategoryKey  string `json:"category_key,omitempty"`
	ServiceIndex int    `json:"service_index"`
}

func idleModal() Modal {
	return Modal{State: StateIdle, ServiceIndex: -1}
}

// Persister receives committed snapshots for asynchronous storage.
type Persister interface {
	Enqueue(doc *domain.Document)
}

// Controller is the single owner of the current document. Consumers
// read immutable snapshots; every mutation goes through an intent
// method here, which forwards to the pure domain operation, commits
// the resulting snapshot and schedules persistence.
//
// Because the controller serializes all edits (one active modal, one
// mutex), positional service addressing cannot observe a stale index
// between read and commit.
type Controller struct {
	mu        sync.RWMutex
	doc       *domain.Document
	editMode  bool
	modal     Modal
	persister Persister
	logger    logger.Logger
}

// NewController creates a controller owning the given initial document.
func NewController(doc *domain.Document, persister Persister, log logger.Logger) *Controller {
	return &Controller{
		doc:       doc,
		modal:     idleModal(),
		persister: persister,
		logger:    log,
	}
}

// Document returns the latest snapshot. The snapshot is never mutated
// after commit, so sharing the pointer with concurrent readers is safe.
func (c *Controller) Document() *domain.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc
}

// EditMode reports whether structural controls are enabled.
func (c *Controller) EditMode() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.editMode
}

// Modal returns the active editing state.
func (c *Controller) Modal() Modal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.modal
}

// ToggleEditMode flips the edit-mode flag and returns the new value.
// Turning edit mode off closes any open modal.
func (c *Controller) ToggleEditMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editMode = !c.editMode
	if !c.editMode {
		c.modal = idleModal()
	}
	return c.editMode
}

// Cancel closes the open modal without touching the document. A
// persistence write already scheduled is unaffected.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modal = idleModal()
}

// OpenAddCategory opens the add-category modal.
func (c *Controller) OpenAddCategory() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editMode {
		return ErrEditModeOff
	}
	c.modal = Modal{State: StateAddingCategory, ServiceIndex: -1}
	return nil
}

// OpenEditCategory opens the edit modal for the category with the
// given key.
func (c *Controller) OpenEditCategory(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editMode {
		return ErrEditModeOff
	}
	if c.doc.CategoryByKey(key) < 0 {
		return domain.ErrCategoryNotFound
	}
	c.modal = Modal{State: StateEditingCategory, CategoryKey: key, ServiceIndex: -1}
	return nil
}

// OpenAddService opens the add-service modal for a category.
func (c *Controller) OpenAddService(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editMode {
		return ErrEditModeOff
	}
	if c.doc.CategoryByKey(key) < 0 {
		return domain.ErrCategoryNotFound
	}
	c.modal = Modal{State: StateAddingService, CategoryKey: key, ServiceIndex: -1}
	return nil
}

// OpenEditService opens the edit modal for the service at index within
// a category.
func (c *Controller) OpenEditService(key string, index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editMode {
		return ErrEditModeOff
	}
	i := c.doc.CategoryByKey(key)
	if i < 0 {
		return domain.ErrCategoryNotFound
	}
	if index < 0 || index >= len(c.doc.Categories[i].Services) {
		return domain.ErrIndexOutOfRange
	}
	c.modal = Modal{State: StateEditingService, CategoryKey: key, ServiceIndex: index}
	return nil
}

// commit replaces the snapshot, resets the modal and schedules
// persistence. Callers hold the write lock. The state update
// happens-before the persistence task sees the snapshot.
func (c *Controller) commit(next *domain.Document) *domain.Document {
	c.doc = next
	c.modal = idleModal()
	if c.persister != nil {
		c.persister.Enqueue(next)
	}
	return next
}

// AddCategory commits the add-category intent. The matching modal must
// be open.
func (c *Controller) AddCategory(cat domain.Category) (*domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editMode {
		return nil, ErrEditModeOff
	}
	if c.modal.State != StateAddingCategory {
		return nil, ErrModalMismatch
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	next, err := domain.AddCategory(c.doc, cat)
	if err != nil {
		return nil, err
	}
	c.logger.Info("category added",
		logger.String("name", cat.Name))
	return c.commit(next), nil
}

// EditCategory commits a name/icon update for the category whose edit
// modal is open.
func (c *Controller) EditCategory(key, name, icon string) (*domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editMode {
		return nil, ErrEditModeOff
	}
	if c.modal.State != StateEditingCategory || c.modal.CategoryKey != key {
		return nil, ErrModalMismatch
	}
	next, err := domain.EditCategory(c.doc, key, name, icon)
	if err != nil {
		return nil, err
	}
	c.logger.Info("category updated",
		logger.String("name", name))
	return c.commit(next), nil
}

// DeleteCategory removes a category and all of its services. Deletion
// needs only edit mode, not an open modal (the grid exposes a delete
// control directly).
func (c *Controller) DeleteCategory(key string) (*domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editMode {
		return nil, ErrEditModeOff
	}
	i := c.doc.CategoryByKey(key)
	if i < 0 {
		return nil, domain.ErrCategoryNotFound
	}
	name := c.doc.Categories[i].Name
	next, err := domain.DeleteCategory(c.doc, key)
	if err != nil {
		return nil, err
	}
	c.logger.Info("category deleted",
		logger.String("name", name))
	return c.commit(next), nil
}

// ReorderCategories commits a new category display order.
func (c *Controller) ReorderCategories(keys []string) (*domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editMode {
		return nil, ErrEditModeOff
	}
	next, err := domain.ReorderCategories(c.doc, keys)
	if err != nil {
		return nil, err
	}
	c.logger.Info("categories reordered")
	return c.commit(next), nil
}

// AddService commits the add-service intent for the category whose
// add-service modal is open.
func (c *Controller) AddService(key string, svc domain.Service) (*domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editMode {
		return nil, ErrEditModeOff
	}
	if c.modal.State != StateAddingService || c.modal.CategoryKey != key {
		return nil, ErrModalMismatch
	}
	if err := svc.Validate(); err != nil {
		return nil, err
	}
	next, err := domain.AddService(c.doc, key, svc)
	if err != nil {
		return nil, err
	}
	c.logger.Info("service added",
		logger.String("name", svc.Name))
	return c.commit(next), nil
}

// EditService commits the service update for the open edit modal.
func (c *Controller) EditService(key string, index int, svc domain.Service) (*domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editMode {
		return nil, ErrEditModeOff
	}
	if c.modal.State != StateEditingService || c.modal.CategoryKey != key || c.modal.ServiceIndex != index {
		return nil, ErrModalMismatch
	}
	if err := svc.Validate(); err != nil {
		return nil, err
	}
	next, err := domain.EditService(c.doc, key, index, svc)
	if err != nil {
		return nil, err
	}
	c.logger.Info("service updated",
		logger.String("name", svc.Name))
	return c.commit(next), nil
}

// DeleteService removes the service at index. Like category deletion
// it needs only edit mode.
func (c *Controller) DeleteService(key string, index int) (*domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editMode {
		return nil, ErrEditModeOff
	}
	next, err := domain.DeleteService(c.doc, key, index)
	if err != nil {
		return nil, err
	}
	c.logger.Info("service deleted",
		logger.Int("index", index))
	return c.commit(next), nil
}

// ReorderServices commits a new service order within a category.
func (c *Controller) ReorderServices(key string, services []domain.Service) (*domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editMode {
		return nil, ErrEditModeOff
	}
	next, err := domain.ReorderServices(c.doc, key, services)
	if err != nil {
		return nil, err
	}
	c.logger.Info("services reordered")
	return c.commit(next), nil
}

// Replace swaps in a wholesale new document (import or reset) and
// schedules persistence. Any open modal is closed: its category may
// not exist anymore.
func (c *Controller) Replace(doc *domain.Document) *domain.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Info("document replaced",
		logger.Int("categories", len(doc.Categories)))
	return c.commit(doc)
}
