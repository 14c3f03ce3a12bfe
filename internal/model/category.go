package model

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a label from a fixed, configured set used to classify expenses.
type Category string

// Built-in category labels.
const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategoryOther         Category = "Other"
)

// Preset names accepted by PresetCategories.
const (
	PresetStandard = "standard"
	PresetExtended = "extended"
)

// Category set construction errors.
var (
	ErrEmptyCategorySet = errors.New("category set cannot be empty")
	ErrBlankCategory    = errors.New("category label cannot be blank")
	ErrDuplicateLabel   = errors.New("duplicate category label")
	ErrUnknownPreset    = errors.New("unknown category preset")
)

// String returns the label.
func (c Category) String() string {
	return string(c)
}

// CategorySet is a closed, ordered set of categories. It cannot be changed
// after construction.
type CategorySet struct {
	index  map[Category]int
	labels []Category
}

// NewCategorySet builds a set from labels, keeping their order. Labels are
// trimmed; blank or repeated labels are rejected.
func NewCategorySet(labels ...string) (CategorySet, error) {
	if len(labels) == 0 {
		return CategorySet{}, ErrEmptyCategorySet
	}

	set := CategorySet{
		index:  make(map[Category]int, len(labels)),
		labels: make([]Category, 0, len(labels)),
	}
	for i, label := range labels {
		trimmed := strings.TrimSpace(label)
		if trimmed == "" {
			return CategorySet{}, fmt.Errorf("%w: position %d", ErrBlankCategory, i+1)
		}
		c := Category(trimmed)
		if _, dup := set.index[c]; dup {
			return CategorySet{}, fmt.Errorf("%w: %q", ErrDuplicateLabel, trimmed)
		}
		set.index[c] = len(set.labels)
		set.labels = append(set.labels, c)
	}

	return set, nil
}

// PresetCategories returns one of the built-in sets.
func PresetCategories(name string) (CategorySet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PresetStandard:
		return mustSet(CategoryFood, CategoryTransport, CategoryHealth, CategoryEducation, CategoryOther), nil
	case PresetExtended, "":
		return mustSet(CategoryFood, CategoryTransport, CategoryEntertainment, CategoryHealth, CategoryEducation, CategoryOther), nil
	default:
		return CategorySet{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

func mustSet(categories ...Category) CategorySet {
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = string(c)
	}
	set, err := NewCategorySet(labels...)
	if err != nil {
		panic(err)
	}
	return set
}

// Contains reports whether c is a member of the set.
func (s CategorySet) Contains(c Category) bool {
	_, ok := s.index[c]
	return ok
}

// Lookup returns the member matching label after trimming.
func (s CategorySet) Lookup(label string) (Category, bool) {
	c := Category(strings.TrimSpace(label))
	if !s.Contains(c) {
		return "", false
	}
	return c, true
}

// All returns the categories in configured order.
func (s CategorySet) All() []Category {
	out := make([]Category, len(s.labels))
	copy(out, s.labels)
	return out
}

// Len returns the number of categories.
func (s CategorySet) Len() int {
	return len(s.labels)
}

// Strings returns the labels as plain strings.
func (s CategorySet) Strings() []string {
	out := make([]string, len(s.labels))
	for i, c := range s.labels {
		out[i] = string(c)
	}
	return out
}
