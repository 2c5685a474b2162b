// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package properties provides a type-keyed store of miscellaneous
// configuration values attached to each widget. Each property is its own
// Go type, and a store holds at most one value per type. Lookups fall back
// from the widget's own store to a per-widget-type default table and then
// to the property type's static default.
package properties

import (
	"reflect"
	"slices"
	"strings"
)

// StaticDefaulter is implemented by property types whose global default
// is not their zero value. It is called on the zero value of the type.
type StaticDefaulter[P any] interface {
	StaticDefault() P
}

// Sanitizer is implemented by property types with a valid range.
// Sanitize returns the value moved into its valid range and whether
// the value was already valid.
type Sanitizer[P any] interface {
	Sanitize() (P, bool)
}

// LayoutAffecting is implemented by property types whose value
// changes the size of the widget they are set on, so that changing
// them must request layout and not just paint.
type LayoutAffecting interface {
	AffectsLayout() bool
}

// AffectsLayout returns whether property P changes widget sizes.
func AffectsLayout[P any]() bool {
	var zero P
	if l, ok := any(zero).(LayoutAffecting); ok {
		return l.AffectsLayout()
	}
	return false
}

// Properties is a store of property values keyed by their type.
// The zero value is an empty store ready to use.
type Properties struct {
	values map[reflect.Type]any
}

// Len returns the number of properties in the store.
func (p *Properties) Len() int {
	return len(p.values)
}

// Types returns the types of the stored properties, sorted by name.
func (p *Properties) Types() []reflect.Type {
	ts := make([]reflect.Type, 0, len(p.values))
	for t := range p.values {
		ts = append(ts, t)
	}
	slices.SortFunc(ts, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return ts
}

// Clone returns a shallow copy of the store.
func (p *Properties) Clone() *Properties {
	c := &Properties{}
	for t, v := range p.values {
		c.set(t, v)
	}
	return c
}

func (p *Properties) set(t reflect.Type, v any) {
	if p.values == nil {
		p.values = map[reflect.Type]any{}
	}
	p.values[t] = v
}

// TypeOf returns the key type of property P.
func TypeOf[P any]() reflect.Type {
	return reflect.TypeFor[P]()
}

// Get returns the value of property P stored in p, if any.
func Get[P any](p *Properties) (P, bool) {
	if p != nil {
		if v, ok := p.values[TypeOf[P]()]; ok {
			return v.(P), true
		}
	}
	var zero P
	return zero, false
}

// Contains returns whether p holds a value for property P.
func Contains[P any](p *Properties) bool {
	_, ok := Get[P](p)
	return ok
}

// Insert stores the value of property P, returning the previous value
// and whether there was one.
func Insert[P any](p *Properties, v P) (old P, had bool) {
	old, had = Get[P](p)
	p.set(TypeOf[P](), v)
	return
}

// Remove deletes property P from p, returning the removed value
// and whether there was one.
func Remove[P any](p *Properties) (old P, had bool) {
	old, had = Get[P](p)
	if had {
		delete(p.values, TypeOf[P]())
	}
	return
}

// StaticDefault returns the global default of property P:
// the result of [StaticDefaulter] if P implements it, otherwise the zero value.
func StaticDefault[P any]() P {
	var zero P
	if d, ok := any(zero).(StaticDefaulter[P]); ok {
		return d.StaticDefault()
	}
	return zero
}

// Sanitize returns v moved into its valid range if P implements
// [Sanitizer], and whether v was already valid.
func Sanitize[P any](v P) (P, bool) {
	if s, ok := any(v).(Sanitizer[P]); ok {
		return s.Sanitize()
	}
	return v, true
}
