package uistate

import (
	"encoding/json"
	"sort"
)

// Dimension names one filterable facet of the operations table. The values
// double as the wire field names of the document filter request.
type Dimension string

const (
	DimDocumentType Dimension = "document_type"
	DimStatus       Dimension = "status"
	DimLocation     Dimension = "location"
	DimCategory     Dimension = "category"
)

// Dimensions lists all filter dimensions in display order.
var Dimensions = []Dimension{DimDocumentType, DimStatus, DimLocation, DimCategory}

// ValidDimension reports whether d names a known filter dimension.
func ValidDimension(d Dimension) bool {
	switch d {
	case DimDocumentType, DimStatus, DimLocation, DimCategory:
		return true
	}
	return false
}

// FilterState holds the selected options per dimension. An empty set means
// no filtering on that dimension. FilterState values are treated as
// immutable; Toggle returns a modified copy.
type FilterState struct {
	selected map[Dimension]map[string]bool
}

// NewFilterState returns an empty filter state.
func NewFilterState() FilterState {
	return FilterState{selected: map[Dimension]map[string]bool{}}
}

// Has reports whether option is selected in dimension d.
func (f FilterState) Has(d Dimension, option string) bool {
	return f.selected[d][option]
}

// Toggle returns a copy of f with option's membership in dimension d
// flipped. Toggling twice returns to the original state.
func (f FilterState) Toggle(d Dimension, option string) FilterState {
	next := f.clone()
	set := next.selected[d]
	if set == nil {
		set = map[string]bool{}
		next.selected[d] = set
	}
	if set[option] {
		delete(set, option)
		if len(set) == 0 {
			delete(next.selected, d)
		}
	} else {
		set[option] = true
	}
	return next
}

// Selected returns the selected options of dimension d in sorted order.
// Nil when the dimension is unfiltered.
func (f FilterState) Selected(d Dimension) []string {
	set := f.selected[d]
	if len(set) == 0 {
		return nil
	}
	opts := make([]string, 0, len(set))
	for o := range set {
		opts = append(opts, o)
	}
	sort.Strings(opts)
	return opts
}

// Empty reports whether no option is selected in any dimension.
func (f FilterState) Empty() bool {
	return len(f.selected) == 0
}

// Count returns the total number of selected options across dimensions.
func (f FilterState) Count() int {
	n := 0
	for _, set := range f.selected {
		n += len(set)
	}
	return n
}

func (f FilterState) clone() FilterState {
	next := NewFilterState()
	for d, set := range f.selected {
		cp := make(map[string]bool, len(set))
		for o := range set {
			cp[o] = true
		}
		next.selected[d] = cp
	}
	return next
}

// MarshalJSON encodes the filter state as the wire shape of the document
// filter request: one sorted string array per selected dimension.
func (f FilterState) MarshalJSON() ([]byte, error) {
	out := make(map[Dimension][]string, len(f.selected))
	for d := range f.selected {
		out[d] = f.Selected(d)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the wire shape back into a filter state.
func (f *FilterState) UnmarshalJSON(b []byte) error {
	var in map[Dimension][]string
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	next := NewFilterState()
	for d, opts := range in {
		if len(opts) == 0 {
			continue
		}
		set := make(map[string]bool, len(opts))
		for _, o := range opts {
			set[o] = true
		}
		next.selected[d] = set
	}
	*f = next
	return nil
}
