package entities

// MigrationChange is one proposed replacement of a retired model identifier.
type MigrationChange struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	From    string `json:"from"`
	To      string `json:"to"`
	Applied bool   `json:"applied"`
	Diff    string `json:"diff,omitempty"` // dry-run preview
}

// MigrationReport lists the changes of a migrate run. Applied is false for
// dry runs.
type MigrationReport struct {
	Changes []*MigrationChange `json:"changes"`
	Applied bool               `json:"applied"`
}

// AppliedCount returns how many changes were written to disk.
func (r *MigrationReport) AppliedCount() int {
	count := 0
	for _, change := range r.Changes {
		if change.Applied {
			count++
		}
	}
	return count
}
