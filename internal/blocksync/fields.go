// Package blocksync models the block-sync widget of the bug form: the row of
// sync buttons derived from the "blocks" field and the product, component and
// version values copied from a selected blocking bug.
//
// The package holds no terminal or network state. The ui package renders a
// Widget and turns its fetch requests into commands.
package blocksync

// FieldKey identifies one of the three synchronised form fields.
type FieldKey int

const (
	Product FieldKey = iota
	Component
	Version
)

// FieldKeys lists the synchronised fields in display order.
var FieldKeys = []FieldKey{Product, Component, Version}

func (k FieldKey) String() string {
	switch k {
	case Product:
		return "product"
	case Component:
		return "component"
	case Version:
		return "version"
	}
	return "unknown"
}

// Placeholder is the label shown while the field is unspecified.
func (k FieldKey) Placeholder() string {
	if k == Version {
		return "unspecified"
	}
	return "Undef"
}

// Field is a form value with its paired display label.
type Field struct {
	Value string
	Label string
}

// Triple is the product/component/version state of the form being edited.
type Triple struct {
	Product   Field
	Component Field
	Version   Field
}

// NewTriple returns a triple in the unspecified state.
func NewTriple() Triple {
	var t Triple
	t.Reset()
	return t
}

// ApplyBugInfo updates all three fields independently. A nil value clears
// the field and shows its placeholder label.
func (t *Triple) ApplyBugInfo(product, component, version *string) {
	t.apply(Product, product)
	t.apply(Component, component)
	t.apply(Version, version)
}

// Reset puts every field back into the unspecified state.
func (t *Triple) Reset() {
	t.ApplyBugInfo(nil, nil, nil)
}

// Get returns the field for key.
func (t Triple) Get(key FieldKey) Field {
	switch key {
	case Product:
		return t.Product
	case Component:
		return t.Component
	default:
		return t.Version
	}
}

func (t *Triple) ptr(key FieldKey) *Field {
	switch key {
	case Product:
		return &t.Product
	case Component:
		return &t.Component
	default:
		return &t.Version
	}
}

func (t *Triple) apply(key FieldKey, value *string) {
	f := t.ptr(key)
	if value == nil {
		f.Value = ""
		f.Label = key.Placeholder()
		return
	}
	f.Value = *value
	f.Label = *value
}

// setValue changes the form value only; the label keeps its last applied text.
func (t *Triple) setValue(key FieldKey, value string) {
	t.ptr(key).Value = value
}
