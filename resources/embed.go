package resources

import "embed"

//go:embed data/page.html.tmpl
var f embed.FS

const PageTemplate = "page.html.tmpl"

// GetEmbeddedResource
// Returns a ResourceEntry for the given resource name that is embedded in
// the binary, or nil if there is no such resource.
func GetEmbeddedResource(path string) *ResourceEntry {
	resourceBytes, err := f.ReadFile("data/" + path)
	if err != nil {
		return nil
	}
	return &ResourceEntry{Data: &resourceBytes}
}
