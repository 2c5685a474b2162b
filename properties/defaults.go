// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package properties

import "reflect"

// DefaultProperties is a table of default property stores keyed by
// widget type. It is shared by every widget of a tree.
type DefaultProperties struct {
	byWidget map[reflect.Type]*Properties
}

// NewDefaultProperties returns a new empty [DefaultProperties] table.
func NewDefaultProperties() *DefaultProperties {
	return &DefaultProperties{byWidget: map[reflect.Type]*Properties{}}
}

// For returns the default store of the given widget type.
// It returns nil if the type has no defaults.
func (d *DefaultProperties) For(widgetType reflect.Type) *Properties {
	if d == nil {
		return nil
	}
	return d.byWidget[widgetType]
}

// InsertDefault sets the default of property P for widgets of type W.
func InsertDefault[W, P any](d *DefaultProperties, v P) {
	wt := reflect.TypeFor[W]()
	p := d.byWidget[wt]
	if p == nil {
		p = &Properties{}
		d.byWidget[wt] = p
	}
	Insert(p, v)
}

// Ref is a read-only view of the properties of one widget, with its
// widget-type defaults attached for fallback.
type Ref struct {
	local    *Properties
	defaults *Properties
}

// NewRef returns a [Ref] over the given local store and type defaults,
// either of which may be nil.
func NewRef(local, defaults *Properties) Ref {
	return Ref{local: local, defaults: defaults}
}

// Lookup returns the effective value of property P for the widget:
// its own value, else its widget type's default, else the static default.
func Lookup[P any](r Ref) P {
	if v, ok := Get[P](r.local); ok {
		return v
	}
	if v, ok := Get[P](r.defaults); ok {
		return v
	}
	return StaticDefault[P]()
}

// LookupLocal returns the value of property P set on the widget itself,
// ignoring defaults.
func LookupLocal[P any](r Ref) (P, bool) {
	return Get[P](r.local)
}
