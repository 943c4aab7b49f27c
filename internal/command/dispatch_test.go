package command

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/pathclip/pathclip/internal/errors"
	"github.com/pathclip/pathclip/internal/ops"
	"github.com/pathclip/pathclip/internal/sysclip"
)

type memReader map[string]string

func (m memReader) ReadFile(path string) (string, error) {
	text, ok := m[path]
	if !ok {
		return "", os.ErrNotExist
	}
	return text, nil
}

type brokenSink struct{}

func (brokenSink) WriteAll(string) error { return stderrors.New("no display") }

func setupDispatcher(t *testing.T, files map[string]string) (*Dispatcher, *sysclip.Memory) {
	t.Helper()
	sink := &sysclip.Memory{}
	return New(ops.NewSession(memReader(files)), WithSink(sink)), sink
}

// folderID creates a folder through the dispatcher and returns its id.
func folderID(t *testing.T, d *Dispatcher, name string, files ...string) string {
	t.Helper()
	_, err := d.Run(NameCreateFolder, append([]string{name}, files...))
	require.NoError(t, err)
	folder, ok := d.Session().Folders.FindByName(name)
	require.True(t, ok)
	return folder.ID
}

func TestDispatch_CopyPathWithContent(t *testing.T) {
	d, sink := setupDispatcher(t, nil)

	res, err := d.Run(NameCopyPathWithContent, []string{"test.rs", "fn main() {}"})
	require.NoError(t, err)
	require.Equal(t, "Copied 1 files to clipboard", res.Message)
	require.Equal(t, "test.rs\n\nfn main() {}", res.Clipboard)
	require.Equal(t, res.Clipboard, sink.Last())

	res, err = d.Run(NameCopyPathWithContent, []string{"lib.rs", "full", "10", "20", "sel"})
	require.NoError(t, err)
	require.Equal(t, "Copied 2 files to clipboard", res.Message)
	require.Equal(t, "test.rs\n\nfn main() {}\n\n---\n\nlib.rs:10-20\n\nsel", sink.Last())
	require.Equal(t, 2, sink.Len())
}

func TestDispatch_ClearClipboard(t *testing.T) {
	d, _ := setupDispatcher(t, nil)
	_, err := d.Run(NameCopyPathWithContent, []string{"a.go", "A"})
	require.NoError(t, err)

	require.Equal(t, "Clipboard cleared", d.Handle(NameClearClipboard, nil))
	require.Equal(t, 0, d.Session().Clipboard.Count())
}

func TestDispatch_FolderLifecycle(t *testing.T) {
	d, _ := setupDispatcher(t, nil)

	require.Equal(t, "Folder 'Docs' created successfully", d.Handle(NameCreateFolder, []string{"Docs", "a.md"}))
	folder, ok := d.Session().Folders.FindByName("Docs")
	require.True(t, ok)
	id := folder.ID

	require.Equal(t, "File 'b.md' added to folder 'Docs'", d.Handle(NameAddFileToFolder, []string{id, "b.md"}))
	require.Equal(t, "Error: File already exists in folder", d.Handle(NameAddFileToFolder, []string{id, "b.md"}))
	require.Equal(t, "File 'a.md' removed from folder 'Docs'", d.Handle(NameRemoveFileFromFolder, []string{id, "a.md"}))
	require.Equal(t, "Folder renamed from 'Docs' to 'Notes'", d.Handle(NameRenameFolder, []string{id, "Notes"}))
	require.Equal(t, "Color 'green' set for folder 'Notes'", d.Handle(NameSetFolderColor, []string{id, "green"}))
	require.Equal(t, "Color removed from folder 'Notes'", d.Handle(NameSetFolderColor, []string{id}))
	require.Equal(t, "Folder 'Notes' deleted successfully", d.Handle(NameDeleteFolder, []string{id}))
	require.Equal(t, "Error: Folder not found", d.Handle(NameDeleteFolder, []string{id}))
}

func TestDispatch_CreateDuplicateName(t *testing.T) {
	d, _ := setupDispatcher(t, nil)
	folderID(t, d, "A")

	_, err := d.Run(NameCreateFolder, []string{"A"})
	require.True(t, errors.Is(err, errors.ErrConflict))
	require.Equal(t, 1, d.Session().Folders.Count())
}

func TestDispatch_CopyFolderContents(t *testing.T) {
	d, sink := setupDispatcher(t, map[string]string{"a.go": "A"})
	id := folderID(t, d, "Src", "a.go", "gone.go")

	res, err := d.Run(NameCopyFolderContents, []string{id})
	require.NoError(t, err)
	require.Equal(t, "Copied folder contents to clipboard", res.Message)
	require.Equal(t, "a.go\n\nA", res.Clipboard)
	require.Equal(t, "a.go\n\nA", sink.Last())

	// Folder copies never enter the aggregated clipboard
	require.Equal(t, 0, d.Session().Clipboard.Count())

	empty := folderID(t, d, "Empty")
	require.Equal(t, "Error: No readable files found in folder", d.Handle(NameCopyFolderContents, []string{empty}))
	require.Equal(t, 1, sink.Len())
}

func TestDispatch_ListFolders(t *testing.T) {
	d, _ := setupDispatcher(t, nil)
	require.Equal(t, "", d.Handle(NameListFolders, nil))

	a := folderID(t, d, "Alpha", "x.go", "y.go")
	b := folderID(t, d, "Beta")

	res, err := d.Run(NameListFolders, nil)
	require.NoError(t, err)
	require.Equal(t, a+": Alpha (2 files)\n"+b+": Beta (0 files)", res.Message)
	require.Len(t, res.Folders, 2)
}

func TestDispatch_Status(t *testing.T) {
	d, _ := setupDispatcher(t, nil)
	folderID(t, d, "A", "x.go")
	_, err := d.Run(NameCopyPathWithContent, []string{"a.go", "A"})
	require.NoError(t, err)

	require.Equal(t, "Clipboard: 1 file copied | Folders: 1 | Total folder files: 1", d.Handle(NameStatus, nil))
}

func TestDispatch_CopyFiles(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{"a.go": "A", "b.go": "B", "notes.txt": "N"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	sink := &sysclip.Memory{}
	d := New(ops.NewSession(nil), WithSink(sink))

	res, err := d.Run(NameCopyFiles, []string{filepath.Join(dir, "*.go"), filepath.Join(dir, "missing.txt")})
	require.NoError(t, err)
	require.Equal(t, "Copied 2 files to clipboard", res.Message)
	want := filepath.Join(dir, "a.go") + "\n\nA\n\n---\n\n" + filepath.Join(dir, "b.go") + "\n\nB"
	require.Equal(t, want, res.Clipboard)
	require.Equal(t, want, sink.Last())

	_, err = d.Run(NameCopyFiles, []string{filepath.Join(dir, "*.rs")})
	require.True(t, errors.Is(err, errors.ErrIOAllFailed))
	require.Equal(t, 1, sink.Len())
}

func TestDispatch_CopyFilesBracketedPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app", "[id]", "page.tsx")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("export default Page"), 0644))
	d := New(ops.NewSession(nil))

	require.Equal(t, "Copied 1 files to clipboard", d.Handle(NameCopyFiles, []string{path}))
	require.True(t, d.Session().Clipboard.Contains(path))
}

func TestDispatch_RemoveFromClipboard(t *testing.T) {
	d, _ := setupDispatcher(t, nil)
	_, err := d.Run(NameCopyPathWithContent, []string{"a.go", "A"})
	require.NoError(t, err)

	require.Equal(t, "File 'a.go' removed from clipboard", d.Handle(NameRemoveFromClipboard, []string{"a.go"}))

	_, err = d.Run(NameRemoveFromClipboard, []string{"a.go"})
	require.True(t, errors.Is(err, errors.ErrNotFound))
	require.Equal(t, "File not found in clipboard", errors.Message(err))
}

func TestDispatch_FindFoldersWithFile(t *testing.T) {
	d, _ := setupDispatcher(t, nil)
	a := folderID(t, d, "One", "shared.go")
	folderID(t, d, "Two", "other.go")
	c := folderID(t, d, "Three", "shared.go", "x.go")

	res, err := d.Run(NameFindFoldersWithFile, []string{"shared.go"})
	require.NoError(t, err)
	require.Equal(t, a+": One (1 files)\n"+c+": Three (2 files)", res.Message)

	require.Equal(t, "", d.Handle(NameFindFoldersWithFile, []string{"none.go"}))
}

func TestDispatch_ValidateFolderName(t *testing.T) {
	d, _ := setupDispatcher(t, nil)
	id := folderID(t, d, "Taken")

	require.Equal(t, "Folder name 'Fresh' is valid", d.Handle(NameValidateFolderName, []string{"Fresh"}))
	require.Equal(t, "Folder name 'Taken' is valid", d.Handle(NameValidateFolderName, []string{"Taken", id}))
	require.Equal(t, "Error: Folder with this name already exists", d.Handle(NameValidateFolderName, []string{"Taken"}))
	require.Equal(t, "Error: Folder name contains invalid characters", d.Handle(NameValidateFolderName, []string{"a|b"}))
}

func TestDispatch_ShowClipboard(t *testing.T) {
	d, _ := setupDispatcher(t, nil)
	require.Equal(t, "No files copied", d.Handle(NameShowClipboard, nil))

	_, err := d.Run(NameCopyPathWithContent, []string{"a.go", "A"})
	require.NoError(t, err)
	require.Equal(t, "a.go\n\nA", d.Handle(NameShowClipboard, nil))
}

func TestDispatch_SinkFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	d := New(ops.NewSession(memReader{}), WithSink(brokenSink{}), WithLogger(zerolog.New(&buf)))

	res, err := d.Run(NameCopyPathWithContent, []string{"a.go", "A"})
	require.NoError(t, err)
	require.Equal(t, "a.go\n\nA", res.Clipboard)
	require.Contains(t, buf.String(), "system clipboard write failed")
}

func TestHandle_Errors(t *testing.T) {
	var buf bytes.Buffer
	d := New(ops.NewSession(memReader{}), WithLogger(zerolog.New(&buf)))

	require.Equal(t, "Error: Unknown command: paste", d.Handle("paste", nil))
	require.Equal(t, "Error: Missing argument: folder_id required", d.Handle(NameDeleteFolder, nil))
	require.Equal(t, "Error: Invalid start line", d.Handle(NameCopyPathWithContent, []string{"a", "b", "x", "1"}))
	require.Equal(t, "Error: Folder not found", d.Handle(NameRenameFolder, []string{"folder_nope", "X"}))

	require.Equal(t, 4, strings.Count(buf.String(), "command failed"))
}

// Every command in the table parses with plausible arguments and never
// reaches the unhandled-request fallback.
func TestDispatch_EveryCommandHandled(t *testing.T) {
	d, _ := setupDispatcher(t, map[string]string{"a.go": "A"})
	id := folderID(t, d, "Base", "a.go")

	args := map[string][]string{
		NameCopyPathWithContent:  {"a.go", "A"},
		NameCreateFolder:         {"Other"},
		NameDeleteFolder:         {id},
		NameRenameFolder:         {id, "Renamed"},
		NameAddFileToFolder:      {id, "b.go"},
		NameRemoveFileFromFolder: {id, "a.go"},
		NameCopyFolderContents:   {id},
		NameCopyFiles:            {"a.go"},
		NameRemoveFromClipboard:  {"a.go"},
		NameSetFolderColor:       {id, "red"},
		NameFindFoldersWithFile:  {"a.go"},
		NameValidateFolderName:   {"Fine"},
	}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			req, err := Parse(name, args[name])
			require.NoError(t, err)
			_, err = d.Dispatch(req)
			require.False(t, errors.Is(err, errors.ErrInternal), "%v", err)
		})
	}
}
