package clip

import "slices"

// Folder is a named, user-managed grouping of file references.
type Folder struct {
	// ID is "folder_" followed by a ULID, unique within a process
	ID string `json:"id"`

	// Name is unique among folders (exact, case-sensitive match)
	Name string `json:"name"`

	// Files is ordered and duplicate-free
	Files []string `json:"files"`

	// Color is an optional free-form display tag
	Color *string `json:"color,omitempty"`
}

// NewFolder returns an empty folder.
func NewFolder(id, name string) *Folder {
	return &Folder{ID: id, Name: name, Files: []string{}}
}

// AddFile appends path unless it is already present. Reports whether it was added.
func (f *Folder) AddFile(path string) bool {
	if f.HasFile(path) {
		return false
	}
	f.Files = append(f.Files, path)
	return true
}

// RemoveFile drops path. Reports whether it was present.
func (f *Folder) RemoveFile(path string) bool {
	i := slices.Index(f.Files, path)
	if i < 0 {
		return false
	}
	f.Files = slices.Delete(f.Files, i, i+1)
	return true
}

// HasFile reports whether path is a member.
func (f *Folder) HasFile(path string) bool {
	return slices.Contains(f.Files, path)
}

// FileCount returns the number of member paths.
func (f *Folder) FileCount() int {
	return len(f.Files)
}

// Clone returns a deep copy, safe to hand out of the registry.
func (f *Folder) Clone() *Folder {
	c := &Folder{
		ID:    f.ID,
		Name:  f.Name,
		Files: slices.Clone(f.Files),
	}
	if c.Files == nil {
		c.Files = []string{}
	}
	if f.Color != nil {
		color := *f.Color
		c.Color = &color
	}
	return c
}
