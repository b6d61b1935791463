// Package categories maps merchant category codes (MCC) to category names and
// category names to broad spending groups.
package categories

import (
	"fmt"
	"sort"
	"sync"

	"fjacquet/budged/internal/parsererror"
)

// Sentinel names produced by the resolver.
const (
	NoMCC              = "No MCC"
	UnknownMCC         = "Unknown/No MCC"
	GroupTransfers     = "Transfers/Other"
	GroupUncategorized = "Other Uncategorized"
)

// Group is a named, ordered list of category names.
type Group struct {
	Name       string   `json:"name" yaml:"name"`
	Categories []string `json:"categories" yaml:"categories"`
}

// Tables is an immutable set of lookup tables. The zero value resolves every
// code as unknown; use New or Default.
type Tables struct {
	codeToName  map[string]string
	groups      []Group
	nameToGroup map[string]string
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the built-in tables. They are built once per process.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := New(defaultCodes, defaultGroups)
		if err != nil {
			panic(fmt.Sprintf("categories: invalid built-in tables: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// New builds validated tables. A category name listed in more than one group,
// an empty group name or an empty code yields a *parsererror.ValidationError.
func New(codes map[string]string, groups []Group) (*Tables, error) {
	t := &Tables{
		codeToName:  make(map[string]string, len(codes)),
		groups:      make([]Group, 0, len(groups)),
		nameToGroup: make(map[string]string),
	}

	for code, name := range codes {
		if code == "" || name == "" {
			return nil, &parsererror.ValidationError{
				Reason: fmt.Sprintf("empty code or name in mapping %q -> %q", code, name),
			}
		}
		t.codeToName[code] = name
	}

	seenGroups := make(map[string]bool, len(groups))
	for _, g := range groups {
		if g.Name == "" {
			return nil, &parsererror.ValidationError{Reason: "empty group name"}
		}
		if seenGroups[g.Name] {
			return nil, &parsererror.ValidationError{
				Reason: fmt.Sprintf("group %q defined twice", g.Name),
			}
		}
		seenGroups[g.Name] = true

		names := make([]string, len(g.Categories))
		copy(names, g.Categories)
		for _, name := range names {
			if prev, ok := t.nameToGroup[name]; ok {
				return nil, &parsererror.ValidationError{
					Reason: fmt.Sprintf("category %q assigned to groups %q and %q", name, prev, g.Name),
				}
			}
			t.nameToGroup[name] = g.Name
		}
		t.groups = append(t.groups, Group{Name: g.Name, Categories: names})
	}

	return t, nil
}

// Merge returns new tables made of base plus overrides. Override codes replace
// or extend the base codes. Categories listed in an override group are moved
// into that group, which is created after the existing ones when new.
func Merge(base *Tables, codes map[string]string, groups []Group) (*Tables, error) {
	mergedCodes := base.Codes()
	for code, name := range codes {
		mergedCodes[code] = name
	}

	merged := base.Groups()
	for _, og := range groups {
		for _, name := range og.Categories {
			for i := range merged {
				merged[i].Categories = removeName(merged[i].Categories, name)
			}
		}

		idx := -1
		for i := range merged {
			if merged[i].Name == og.Name {
				idx = i
				break
			}
		}
		if idx < 0 {
			merged = append(merged, Group{Name: og.Name})
			idx = len(merged) - 1
		}
		merged[idx].Categories = append(merged[idx].Categories, og.Categories...)
	}

	return New(mergedCodes, merged)
}

func removeName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

// ResolveCategoryName maps a code to its category name. An empty code gives
// NoMCC and an unmapped one gives UnknownMCC.
func (t *Tables) ResolveCategoryName(code string) string {
	if code == "" {
		return NoMCC
	}
	if t != nil {
		if name, ok := t.codeToName[code]; ok {
			return name
		}
	}
	return UnknownMCC
}

// ResolveGroup maps a category name to its group. NoMCC resolves to
// GroupTransfers and names without a group to GroupUncategorized.
func (t *Tables) ResolveGroup(name string) string {
	if name == NoMCC {
		return GroupTransfers
	}
	if t != nil {
		if group, ok := t.nameToGroup[name]; ok {
			return group
		}
	}
	return GroupUncategorized
}

// Lookup returns the category name for a known code.
func (t *Tables) Lookup(code string) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.codeToName[code]
	return name, ok
}

// Codes returns a copy of the code to name mapping.
func (t *Tables) Codes() map[string]string {
	out := make(map[string]string)
	if t == nil {
		return out
	}
	for k, v := range t.codeToName {
		out[k] = v
	}
	return out
}

// SortedCodes returns the known codes in ascending order.
func (t *Tables) SortedCodes() []string {
	codes := make([]string, 0, len(t.Codes()))
	for code := range t.Codes() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Groups returns a deep copy of the groups in definition order.
func (t *Tables) Groups() []Group {
	if t == nil {
		return nil
	}
	out := make([]Group, len(t.groups))
	for i, g := range t.groups {
		names := make([]string, len(g.Categories))
		copy(names, g.Categories)
		out[i] = Group{Name: g.Name, Categories: names}
	}
	return out
}

// Document is the serialisable form of the tables. It is both the output of
// the categories command and the format of the override file.
type Document struct {
	MCCCodes       map[string]string `json:"mcc_codes" yaml:"mcc_codes"`
	CategoryGroups []Group           `json:"category_groups" yaml:"category_groups"`
}

// Document returns the tables in serialisable form.
func (t *Tables) Document() Document {
	return Document{MCCCodes: t.Codes(), CategoryGroups: t.Groups()}
}
