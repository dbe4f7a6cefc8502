// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package query implements the read operations shared by every catalog
// collection: conjunctive filtering, substring search, stable ordering,
// offset/limit paging, top-K selection, random sampling and distinct values.
// All functions are pure over the slices they are given and never modify them.
package query

import "strings"

// Predicate reports whether an item passes a filter. A nil Predicate means
// "no filter on this field" and is skipped.
type Predicate[T any] func(T) bool

// Filter returns the items satisfying every non-nil predicate, in their
// original order. The result never aliases items.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if p != nil && !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// Equal matches items whose field equals want.
func Equal[T any, V comparable](field func(T) V, want V) Predicate[T] {
	return func(it T) bool {
		return field(it) == want
	}
}

// EqualString matches a string-typed field exactly. An empty want means the
// filter is absent and a nil predicate is returned.
func EqualString[T any, S ~string](field func(T) S, want string) Predicate[T] {
	if want == "" {
		return nil
	}
	return func(it T) bool {
		return string(field(it)) == want
	}
}

// EqualPtr matches a field against an optional value; nil means absent.
func EqualPtr[T any, V comparable](field func(T) V, want *V) Predicate[T] {
	if want == nil {
		return nil
	}
	w := *want
	return func(it T) bool {
		return field(it) == w
	}
}

// Contains matches items where any of the given fields contains text as a
// plain, case-sensitive substring. An empty text means no filter.
func Contains[T any](text string, fields ...func(T) string) Predicate[T] {
	if text == "" {
		return nil
	}
	return func(it T) bool {
		for _, f := range fields {
			if strings.Contains(f(it), text) {
				return true
			}
		}
		return false
	}
}

// Distinct returns the unique non-empty values of a field, sorted
// lexicographically so the result is deterministic for a given input.
func Distinct[T any, S ~string](items []T, field func(T) S) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, it := range items {
		v := string(field(it))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sortStrings(out)
	return out
}
