package option

// Value is the strongly typed value of one option. The zero Value is a
// disabled toggle.
type Value struct {
	kind    Kind
	on      bool
	members []string
	index   map[string]bool
}

// ToggleValue returns a toggle value.
func ToggleValue(on bool) Value {
	return Value{kind: KindToggle, on: on}
}

func newSetValue(def Definition, members []string) Value {
	selected := make(map[string]bool, len(members))
	for _, m := range members {
		if def.Allows(m) {
			selected[m] = true
		}
	}

	// Members keep the domain order so equal selections compare equal.
	ordered := make([]string, 0, len(selected))
	for _, k := range def.ValidKeys {
		if selected[k] {
			ordered = append(ordered, k)
		}
	}

	return Value{kind: KindSet, members: ordered, index: selected}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindToggle
	}
	return v.kind
}

// Bool reports a toggle's state. Sets are never "on".
func (v Value) Bool() bool {
	return v.Kind() == KindToggle && v.on
}

// Has reports set membership. Toggles contain nothing.
func (v Value) Has(member string) bool {
	return v.kind == KindSet && v.index[member]
}

// Members returns a copy of a set's members in domain order.
func (v Value) Members() []string {
	out := make([]string, len(v.members))
	copy(out, v.members)
	return out
}

// Raw returns the value in the shape a host configuration file uses.
func (v Value) Raw() any {
	if v.Kind() == KindSet {
		return v.Members()
	}
	return v.on
}
