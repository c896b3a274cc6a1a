package metadata

// Spec describes one metadata field: its key and a constructor for the
// field type's zero value.
type Spec struct {
	Key string
	New func() any
}

// StringSpec describes a free-text field.
func StringSpec(key string) Spec {
	return Spec{Key: key, New: func() any { return "" }}
}

// SetSpec describes a set-of-strings field.
func SetSpec(key string) Spec {
	return Spec{Key: key, New: func() any { return StringSet{} }}
}

// SpecsFor returns the fields a new bundle of type bt carries.
func SpecsFor(bt BundleType) []Spec {
	specs := []Spec{
		StringSpec(KeyName),
		StringSpec(KeyDescription),
		SetSpec(KeyTags),
	}
	switch bt.Name {
	case ProgramBundle.Name, RunBundle.Name:
		specs = append(specs, SetSpec(KeyArchitectures))
	}
	return specs
}
