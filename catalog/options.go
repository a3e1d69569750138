package catalog

// Options is an insertion-ordered set of endpoint options. Merge semantics
// depend on order: Set on an existing key overwrites the value in place, so the
// first writer fixes a key's position and the last writer fixes its value.
type Options struct {
	keys   []string
	values map[string]string
}

// NewOptions returns an empty option set.
func NewOptions() *Options {
	return &Options{values: make(map[string]string)}
}

// Set inserts or overwrites a single option.
func (o *Options) Set(name, value string) {
	if _, ok := o.values[name]; !ok {
		o.keys = append(o.keys, name)
	}
	o.values[name] = value
}

// Get returns the value for name and whether it is present.
func (o *Options) Get(name string) (string, bool) {
	v, ok := o.values[name]
	return v, ok
}

// Len returns the number of options in the set.
func (o *Options) Len() int {
	return len(o.keys)
}

// Keys returns the option names in insertion order.
func (o *Options) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Each calls fn for every option in insertion order.
func (o *Options) Each(fn func(name, value string)) {
	for _, k := range o.keys {
		fn(k, o.values[k])
	}
}

// Delete removes an option if present.
func (o *Options) Delete(name string) {
	if _, ok := o.values[name]; !ok {
		return
	}
	delete(o.values, name)
	for i, k := range o.keys {
		if k == name {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Clear removes all options. Callers use this to signal that every option has
// been consumed.
func (o *Options) Clear() {
	o.keys = o.keys[:0]
	for k := range o.values {
		delete(o.values, k)
	}
}

// Map returns the options as a plain map. Order is lost; intended for handing
// options to APIs that take loosely-typed parameter maps.
func (o *Options) Map() map[string]string {
	out := make(map[string]string, len(o.keys))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}
