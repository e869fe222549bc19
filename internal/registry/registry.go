// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"fmt"
	"net/http"
	"sort"
)

// Kind tells where an entry came from.
type Kind int

const (
	KindPage Kind = iota
	KindStatic
	KindHandler
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindStatic:
		return "static"
	case KindHandler:
		return "handler"
	default:
		return "unknown"
	}
}

// Entry is a registered dispatch target.
type Entry struct {
	Name    string
	Kind    Kind
	Source  string
	Handler http.Handler
}

// Registry is the name to handler table consulted by the front controller.
// Lookups are exact and case-sensitive.
type Registry struct {
	entries map[string]Entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds an entry. Names must be unique.
func (r *Registry) Register(e Entry) error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if e.Handler == nil {
		return fmt.Errorf("%w: %s", ErrNilHandler, e.Name)
	}
	if prev, ok := r.entries[e.Name]; ok {
		return fmt.Errorf("%w: %s (%s %s)", ErrDuplicateName, e.Name, prev.Kind, prev.Source)
	}
	r.entries[e.Name] = e
	return nil
}

// Handle registers h under name as a [KindHandler] entry.
func (r *Registry) Handle(name string, h http.Handler) error {
	return r.Register(Entry{Name: name, Kind: KindHandler, Source: "builtin", Handler: h})
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns all registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
