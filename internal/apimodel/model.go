// Package apimodel holds the in-memory form of a pre-parsed API description:
// one package, its exported symbols and their members.
//
// Values are created once per input file and never mutated after load.
package apimodel

import (
	"slices"
	"sort"
)

// Kind identifies what an exported symbol is.
type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindFunction  Kind = "function"
)

// Kinds lists every recognized kind.
var Kinds = []Kind{KindClass, KindInterface, KindFunction}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	return slices.Contains(Kinds, k)
}

func (k Kind) String() string { return string(k) }

// PackageDescription documents one module.
type PackageDescription struct {
	Name    string                  `json:"name"`
	Summary Markup                  `json:"summary"`
	Exports map[string]ExportedItem `json:"exports"`
}

// ExportedItem is one documented symbol.
type ExportedItem struct {
	Kind       Kind                  `json:"kind"`
	Signature  string                `json:"signature,omitempty"`
	IsBeta     bool                  `json:"isBeta"`
	Extends    References            `json:"extends,omitempty"`
	Implements References            `json:"implements,omitempty"`
	Members    map[string]MemberItem `json:"members,omitempty"`
}

// MemberItem is one member of a class or interface. Kind is informational
// (method, property, ...) and never validated.
type MemberItem struct {
	Kind      string `json:"kind,omitempty"`
	Signature string `json:"signature"`
	IsBeta    bool   `json:"isBeta"`
}

// NamedExport pairs an export with its name.
type NamedExport struct {
	Name string
	Item ExportedItem
}

// NamedMember pairs a member with its name.
type NamedMember struct {
	Name string
	Item MemberItem
}

// RenderedPage is one output artifact. Path is slash separated and relative
// to the output root.
type RenderedPage struct {
	Path    string
	Content []byte
}

// SortedExports returns the package exports ordered by name.
func (p *PackageDescription) SortedExports() []NamedExport {
	out := make([]NamedExport, 0, len(p.Exports))
	for name, item := range p.Exports {
		out = append(out, NamedExport{Name: name, Item: item})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SortedMembers returns the item members ordered by name.
func (e ExportedItem) SortedMembers() []NamedMember {
	out := make([]NamedMember, 0, len(e.Members))
	for name, item := range e.Members {
		out = append(out, NamedMember{Name: name, Item: item})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
