package accounts

import "sort"

// Filter is the account allow-list. It maps an account name to whether the
// account's transactions are reported. A Filter is never modified after
// construction.
type Filter struct {
	include map[string]bool
	names   []string
}

// NewFilter copies entries into a new Filter.
func NewFilter(entries map[string]bool) Filter {
	include := make(map[string]bool, len(entries))
	names := make([]string, 0, len(entries))
	for name, ok := range entries {
		include[name] = ok
		names = append(names, name)
	}
	sort.Strings(names)
	return Filter{include: include, names: names}
}

// Includes reports whether transactions on account are reported.
// Accounts absent from the filter are excluded.
func (f Filter) Includes(account string) bool {
	return f.include[account]
}

// Known reports whether account appears in the filter at all, whatever its
// flag.
func (f Filter) Known(account string) bool {
	_, ok := f.include[account]
	return ok
}

// Names returns the account names in sorted order.
func (f Filter) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Included returns the sorted names whose flag is true.
func (f Filter) Included() []string {
	var out []string
	for _, name := range f.names {
		if f.include[name] {
			out = append(out, name)
		}
	}
	return out
}

// Len returns the number of known accounts.
func (f Filter) Len() int {
	return len(f.names)
}

// Entries returns a copy of the underlying mapping.
func (f Filter) Entries() map[string]bool {
	out := make(map[string]bool, len(f.include))
	for k, v := range f.include {
		out[k] = v
	}
	return out
}
