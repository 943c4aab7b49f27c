package ops

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/pathclip/pathclip/internal/clip"
	"github.com/pathclip/pathclip/internal/errors"
)

// FolderIDPrefix starts every generated folder id.
const FolderIDPrefix = "folder_"

// Folders is the folder registry. Folders are kept in creation order; the
// registry is the only mutator, so lookups hand out clones.
type Folders struct {
	folders []*clip.Folder
	reader  Reader
	strict  bool

	now     func() time.Time
	entropy io.Reader
}

// FoldersOption configures a Folders registry.
type FoldersOption func(*Folders)

// WithStrictNames makes Create and Rename apply ValidateName in full.
func WithStrictNames(strict bool) FoldersOption {
	return func(f *Folders) { f.strict = strict }
}

// WithClock overrides the time source used for folder ids.
func WithClock(now func() time.Time) FoldersOption {
	return func(f *Folders) { f.now = now }
}

// NewFolders returns an empty registry reading folder contents through reader.
// A nil reader falls back to a default FileReader.
func NewFolders(reader Reader, opts ...FoldersOption) *Folders {
	if reader == nil {
		reader = NewFileReader(nil)
	}
	f := &Folders{
		reader: reader,
		now:    time.Now,
		// Monotonic entropy keeps ids strictly increasing inside one millisecond.
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateFolderInput contains parameters for Create.
type CreateFolderInput struct {
	Name  string
	Files []string
}

// Create adds a new folder. Duplicate paths in Files are dropped.
func (f *Folders) Create(input CreateFolderInput) (string, error) {
	if err := f.checkName(input.Name, ""); err != nil {
		return "", err
	}

	id, err := f.newID()
	if err != nil {
		return "", err
	}

	folder := clip.NewFolder(id, input.Name)
	for _, path := range input.Files {
		folder.AddFile(path)
	}
	f.folders = append(f.folders, folder)

	return fmt.Sprintf("Folder '%s' created successfully", input.Name), nil
}

// Delete removes the folder with the given id.
func (f *Folders) Delete(id string) (string, error) {
	i := f.index(id)
	if i < 0 {
		return "", errors.NewFolderNotFound(id)
	}
	name := f.folders[i].Name
	f.folders = append(f.folders[:i], f.folders[i+1:]...)
	return fmt.Sprintf("Folder '%s' deleted successfully", name), nil
}

// Rename changes a folder's name. Renaming a folder to its own name succeeds.
func (f *Folders) Rename(id, newName string) (string, error) {
	if err := f.checkName(newName, id); err != nil {
		return "", err
	}

	folder := f.find(id)
	if folder == nil {
		return "", errors.NewFolderNotFound(id)
	}
	oldName := folder.Name
	folder.Name = newName
	return fmt.Sprintf("Folder renamed from '%s' to '%s'", oldName, newName), nil
}

// AddFile appends path to a folder.
func (f *Folders) AddFile(id, path string) (string, error) {
	folder := f.find(id)
	if folder == nil {
		return "", errors.NewFolderNotFound(id)
	}
	if !folder.AddFile(path) {
		return "", errors.NewFileAlreadyInFolder(id, path)
	}
	return fmt.Sprintf("File '%s' added to folder '%s'", path, folder.Name), nil
}

// RemoveFile drops path from a folder.
func (f *Folders) RemoveFile(id, path string) (string, error) {
	folder := f.find(id)
	if folder == nil {
		return "", errors.NewFolderNotFound(id)
	}
	if !folder.RemoveFile(path) {
		return "", errors.NewFileNotInFolder(id, path)
	}
	return fmt.Sprintf("File '%s' removed from folder '%s'", path, folder.Name), nil
}

// SetColor sets a folder's color, or clears it when color is nil.
func (f *Folders) SetColor(id string, color *string) (string, error) {
	folder := f.find(id)
	if folder == nil {
		return "", errors.NewFolderNotFound(id)
	}
	if color == nil {
		folder.Color = nil
		return fmt.Sprintf("Color removed from folder '%s'", folder.Name), nil
	}
	c := *color
	folder.Color = &c
	return fmt.Sprintf("Color '%s' set for folder '%s'", c, folder.Name), nil
}

// CopyContents reads every file in the folder and renders the readable ones
// in clipboard format. It does not touch the clipboard's own entries.
func (f *Folders) CopyContents(id string) (string, error) {
	folder := f.find(id)
	if folder == nil {
		return "", errors.NewFolderNotFound(id)
	}

	entries := make([]clip.Entry, 0, len(folder.Files))
	for _, path := range folder.Files {
		text, err := f.reader.ReadFile(path)
		if err != nil {
			continue
		}
		entries = append(entries, clip.NewEntry(path, text, nil))
	}

	if len(entries) == 0 {
		return "", errors.NewIOAllFailed("No readable files found in folder", len(folder.Files))
	}

	return clip.Render(entries), nil
}

// Get returns a copy of the folder with the given id.
func (f *Folders) Get(id string) (*clip.Folder, bool) {
	folder := f.find(id)
	if folder == nil {
		return nil, false
	}
	return folder.Clone(), true
}

// FindByName returns a copy of the folder with exactly this name.
func (f *Folders) FindByName(name string) (*clip.Folder, bool) {
	for _, folder := range f.folders {
		if folder.Name == name {
			return folder.Clone(), true
		}
	}
	return nil, false
}

// List returns copies of all folders in creation order.
func (f *Folders) List() []*clip.Folder {
	out := make([]*clip.Folder, len(f.folders))
	for i, folder := range f.folders {
		out[i] = folder.Clone()
	}
	return out
}

// Count returns the number of folders.
func (f *Folders) Count() int {
	return len(f.folders)
}

// TotalFileCount sums the file counts of all folders.
func (f *Folders) TotalFileCount() int {
	total := 0
	for _, folder := range f.folders {
		total += folder.FileCount()
	}
	return total
}

// FoldersContaining returns copies of the folders whose files include path,
// in registry order. The result is empty, never nil, when nothing matches.
func (f *Folders) FoldersContaining(path string) []*clip.Folder {
	out := []*clip.Folder{}
	for _, folder := range f.folders {
		if folder.HasFile(path) {
			out = append(out, folder.Clone())
		}
	}
	return out
}

// ValidateName runs every name rule, including collisions with folders other
// than excludeID ("" excludes nothing).
func (f *Folders) ValidateName(name, excludeID string) error {
	if err := clip.CheckName(name); err != nil {
		return err
	}
	return f.checkCollision(name, excludeID)
}

// checkName is the create/rename gate: empty and collision checks, or the
// full ValidateName in strict mode.
func (f *Folders) checkName(name, excludeID string) error {
	if f.strict {
		return f.ValidateName(name, excludeID)
	}
	if clip.IsBlank(name) {
		return errors.NewValidation("Folder name cannot be empty")
	}
	return f.checkCollision(name, excludeID)
}

func (f *Folders) checkCollision(name, excludeID string) error {
	for _, folder := range f.folders {
		if folder.Name == name && folder.ID != excludeID {
			return errors.NewNameAlreadyExists(name)
		}
	}
	return nil
}

func (f *Folders) newID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(f.now()), f.entropy)
	if err != nil {
		return "", errors.NewInternal(err)
	}
	return FolderIDPrefix + id.String(), nil
}

func (f *Folders) index(id string) int {
	for i, folder := range f.folders {
		if folder.ID == id {
			return i
		}
	}
	return -1
}

func (f *Folders) find(id string) *clip.Folder {
	if i := f.index(id); i >= 0 {
		return f.folders[i]
	}
	return nil
}
