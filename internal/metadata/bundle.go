package metadata

import "sort"

// BundleType identifies the kind of bundle being created.
type BundleType struct {
	Name string
	// Uploaded marks types created directly from local files.
	Uploaded bool
}

var (
	ProgramBundle = BundleType{Name: "program", Uploaded: true}
	DatasetBundle = BundleType{Name: "dataset", Uploaded: true}
	MakeBundle    = BundleType{Name: "make"}
	RunBundle     = BundleType{Name: "run"}
)

var bundleTypes = map[string]BundleType{
	ProgramBundle.Name: ProgramBundle,
	DatasetBundle.Name: DatasetBundle,
	MakeBundle.Name:    MakeBundle,
	RunBundle.Name:     RunBundle,
}

// LookupBundleType returns the known bundle type with the given name.
func LookupBundleType(name string) (BundleType, bool) {
	bt, ok := bundleTypes[name]
	return bt, ok
}

// BundleTypeNames lists the known bundle types in sorted order.
func BundleTypeNames() []string {
	names := make([]string, 0, len(bundleTypes))
	for name := range bundleTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AnonymousName is the name given to bundles nothing better can be derived for.
func AnonymousName(bt BundleType) string {
	return "anonymous-" + bt.Name
}
