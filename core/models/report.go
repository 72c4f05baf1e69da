package models

// Report is the result of a dependency analysis pass over an export's
// component files. Both lists are deduplicated and sorted ascending.
type Report struct {
	NpmPackages  []string `json:"npm_packages"`
	UIComponents []string `json:"figma_ui_components"`
}

func (r *Report) Empty() bool {
	return len(r.NpmPackages) == 0 && len(r.UIComponents) == 0
}
