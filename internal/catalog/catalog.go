// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/specialistvlad/labwarego/internal/ctxlog"
	"github.com/specialistvlad/labwarego/internal/resource"
)

var (
	// ErrUnknownModel is returned when no factory is registered for a model.
	ErrUnknownModel = errors.New("unknown labware model")

	// ErrDuplicateName is returned when an instance name is already in use.
	ErrDuplicateName = errors.New("labware name already in use")
)

// Factory builds a descriptor for the named instance.
type Factory func(name string) resource.Describer

// Module is implemented by packages that contribute labware models.
type Module interface {
	Register(c *Catalog)
}

// Catalog holds the registered factories and the names of created instances
// for a single application instance.
type Catalog struct {
	logger *slog.Logger

	mu        sync.RWMutex
	factories map[string]Factory

	// Key: instance name, Value: model identifier.
	names sync.Map
}

// New creates an empty Catalog that logs registrations with the logger
// carried by ctx.
func New(ctx context.Context) *Catalog {
	return &Catalog{
		logger:    ctxlog.FromContext(ctx),
		factories: make(map[string]Factory),
	}
}

// Register binds a factory to a model identifier. Registering the same model
// twice is a programmer error and panics.
func (c *Catalog) Register(model string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.factories[model]; exists {
		panic(fmt.Sprintf("labware model '%s' already registered", model))
	}
	c.logger.Debug("Registering labware model.", "model", model)
	c.factories[model] = factory
}

// RegisterModules registers every module in order.
func (c *Catalog) RegisterModules(modules ...Module) {
	for _, m := range modules {
		m.Register(c)
	}
}

// Has reports whether a factory exists for model.
func (c *Catalog) Has(model string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.factories[model]
	return ok
}

// Models returns the registered model identifiers in sorted order.
func (c *Catalog) Models() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	models := make([]string, 0, len(c.factories))
	for m := range c.factories {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}

// Create builds a new instance of model named name. The descriptor must pass
// validation and the name must not have been used by a previous Create call on
// this catalog.
func (c *Catalog) Create(ctx context.Context, model, name string) (resource.Describer, error) {
	logger := ctxlog.FromContext(ctx)

	c.mu.RLock()
	factory, ok := c.factories[model]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownModel, model)
	}

	item := factory(name)
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("model '%s' produced an invalid resource: %w", model, err)
	}

	if owner, loaded := c.names.LoadOrStore(name, model); loaded {
		return nil, fmt.Errorf("%w: '%s' (model '%s')", ErrDuplicateName, name, owner)
	}

	logger.Debug("Labware instance created.", "model", model, "name", name)
	return item, nil
}

// Release frees name so that it can be used by a later Create call.
func (c *Catalog) Release(name string) {
	c.names.Delete(name)
}
