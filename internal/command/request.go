// Package command turns a host command (a name plus string arguments) into
// a typed request and runs it against a session.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pathclip/pathclip/internal/clip"
	"github.com/pathclip/pathclip/internal/errors"
)

// Command names accepted by Parse.
const (
	NameCopyPathWithContent  = "copy_path_with_content"
	NameClearClipboard       = "clear_clipboard"
	NameCreateFolder         = "create_folder"
	NameDeleteFolder         = "delete_folder"
	NameRenameFolder         = "rename_folder"
	NameAddFileToFolder      = "add_file_to_folder"
	NameRemoveFileFromFolder = "remove_file_from_folder"
	NameCopyFolderContents   = "copy_folder_contents"
	NameListFolders          = "list_folders"
	NameStatus               = "status"
	NameCopyFiles            = "copy_files"
	NameRemoveFromClipboard  = "remove_from_clipboard"
	NameSetFolderColor       = "set_folder_color"
	NameFindFoldersWithFile  = "find_folders_with_file"
	NameValidateFolderName   = "validate_folder_name"
	NameShowClipboard        = "show_clipboard"
)

// Spec documents one command for help output and tool registration.
type Spec struct {
	Name    string
	Args    string
	Summary string
}

// Specs lists every command in display order.
var Specs = []Spec{
	{NameCopyPathWithContent, "<path> <content> [<start_line> <end_line> [<selected_text>]]", "Copy a file's text (or a line selection) into the clipboard"},
	{NameClearClipboard, "", "Remove every clipboard entry"},
	{NameCreateFolder, "<name> [<file>...]", "Create a folder, optionally with files"},
	{NameDeleteFolder, "<folder_id>", "Delete a folder"},
	{NameRenameFolder, "<folder_id> <new_name>", "Rename a folder"},
	{NameAddFileToFolder, "<folder_id> <path>", "Add a file to a folder"},
	{NameRemoveFileFromFolder, "<folder_id> <path>", "Remove a file from a folder"},
	{NameCopyFolderContents, "<folder_id>", "Copy the contents of every readable file in a folder"},
	{NameListFolders, "", "List folders as \"<id>: <name> (<n> files)\""},
	{NameStatus, "", "Show clipboard and folder counts"},
	{NameCopyFiles, "<path-or-glob>...", "Read files from disk into the clipboard, skipping unreadable ones"},
	{NameRemoveFromClipboard, "<path>", "Drop one file from the clipboard"},
	{NameSetFolderColor, "<folder_id> [<color>]", "Set a folder's color, or clear it when omitted"},
	{NameFindFoldersWithFile, "<path>", "List folders that contain a file"},
	{NameValidateFolderName, "<name> [<exclude_folder_id>]", "Check a folder name without changing anything"},
	{NameShowClipboard, "", "Print the combined clipboard text"},
}

// Names returns every command name in display order.
func Names() []string {
	names := make([]string, len(Specs))
	for i, s := range Specs {
		names[i] = s.Name
	}
	return names
}

// Request is one parsed command. The set of implementations is closed.
type Request interface {
	Command() string
	isRequest()
}

type (
	// CopyPathWithContent copies text supplied by the editor.
	CopyPathWithContent struct {
		Path      string
		Content   string
		Selection *clip.LineSelection
	}

	ClearClipboard struct{}

	CreateFolder struct {
		Name  string
		Files []string
	}

	DeleteFolder struct {
		FolderID string
	}

	RenameFolder struct {
		FolderID string
		NewName  string
	}

	AddFileToFolder struct {
		FolderID string
		Path     string
	}

	RemoveFileFromFolder struct {
		FolderID string
		Path     string
	}

	CopyFolderContents struct {
		FolderID string
	}

	ListFolders struct{}

	Status struct{}

	// CopyFiles reads files (or glob matches) from disk into the clipboard.
	CopyFiles struct {
		Patterns []string
	}

	RemoveFromClipboard struct {
		Path string
	}

	// SetFolderColor clears the color when Color is nil.
	SetFolderColor struct {
		FolderID string
		Color    *string
	}

	FindFoldersWithFile struct {
		Path string
	}

	// ValidateFolderName ignores the folder ExcludeID when checking collisions.
	ValidateFolderName struct {
		Name      string
		ExcludeID string
	}

	ShowClipboard struct{}
)

func (CopyPathWithContent) Command() string  { return NameCopyPathWithContent }
func (ClearClipboard) Command() string       { return NameClearClipboard }
func (CreateFolder) Command() string         { return NameCreateFolder }
func (DeleteFolder) Command() string         { return NameDeleteFolder }
func (RenameFolder) Command() string         { return NameRenameFolder }
func (AddFileToFolder) Command() string      { return NameAddFileToFolder }
func (RemoveFileFromFolder) Command() string { return NameRemoveFileFromFolder }
func (CopyFolderContents) Command() string   { return NameCopyFolderContents }
func (ListFolders) Command() string          { return NameListFolders }
func (Status) Command() string               { return NameStatus }
func (CopyFiles) Command() string            { return NameCopyFiles }
func (RemoveFromClipboard) Command() string  { return NameRemoveFromClipboard }
func (SetFolderColor) Command() string       { return NameSetFolderColor }
func (FindFoldersWithFile) Command() string  { return NameFindFoldersWithFile }
func (ValidateFolderName) Command() string   { return NameValidateFolderName }
func (ShowClipboard) Command() string        { return NameShowClipboard }

func (CopyPathWithContent) isRequest()  {}
func (ClearClipboard) isRequest()       {}
func (CreateFolder) isRequest()         {}
func (DeleteFolder) isRequest()         {}
func (RenameFolder) isRequest()         {}
func (AddFileToFolder) isRequest()      {}
func (RemoveFileFromFolder) isRequest() {}
func (CopyFolderContents) isRequest()   {}
func (ListFolders) isRequest()          {}
func (Status) isRequest()               {}
func (CopyFiles) isRequest()            {}
func (RemoveFromClipboard) isRequest()  {}
func (SetFolderColor) isRequest()       {}
func (FindFoldersWithFile) isRequest()  {}
func (ValidateFolderName) isRequest()   {}
func (ShowClipboard) isRequest()        {}

// Missing-argument messages.
const (
	msgMissingPathAndContent = "Missing arguments: file_path and content required"
	msgMissingFolderName     = "Missing argument: folder name required"
	msgMissingFolderID       = "Missing argument: folder_id required"
	msgMissingIDAndName      = "Missing arguments: folder_id and new_name required"
	msgMissingIDAndPath      = "Missing arguments: folder_id and file_path required"
	msgMissingPath           = "Missing argument: file_path required"
	msgMissingPaths          = "Missing argument: at least one file path required"
)

// Parse validates arity and argument formats and returns the typed request.
// Extra trailing arguments are ignored.
func Parse(name string, args []string) (Request, error) {
	switch name {
	case NameCopyPathWithContent:
		if len(args) < 2 {
			return nil, errors.NewValidation(msgMissingPathAndContent)
		}
		req := CopyPathWithContent{Path: args[0], Content: args[1]}
		if len(args) >= 4 {
			sel, err := parseSelection(args)
			if err != nil {
				return nil, err
			}
			req.Selection = sel
		}
		return req, nil

	case NameClearClipboard:
		return ClearClipboard{}, nil

	case NameCreateFolder:
		if len(args) < 1 {
			return nil, errors.NewValidation(msgMissingFolderName)
		}
		return CreateFolder{Name: args[0], Files: append([]string{}, args[1:]...)}, nil

	case NameDeleteFolder:
		if len(args) < 1 {
			return nil, errors.NewValidation(msgMissingFolderID)
		}
		return DeleteFolder{FolderID: args[0]}, nil

	case NameRenameFolder:
		if len(args) < 2 {
			return nil, errors.NewValidation(msgMissingIDAndName)
		}
		return RenameFolder{FolderID: args[0], NewName: args[1]}, nil

	case NameAddFileToFolder:
		if len(args) < 2 {
			return nil, errors.NewValidation(msgMissingIDAndPath)
		}
		return AddFileToFolder{FolderID: args[0], Path: args[1]}, nil

	case NameRemoveFileFromFolder:
		if len(args) < 2 {
			return nil, errors.NewValidation(msgMissingIDAndPath)
		}
		return RemoveFileFromFolder{FolderID: args[0], Path: args[1]}, nil

	case NameCopyFolderContents:
		if len(args) < 1 {
			return nil, errors.NewValidation(msgMissingFolderID)
		}
		return CopyFolderContents{FolderID: args[0]}, nil

	case NameListFolders:
		return ListFolders{}, nil

	case NameStatus:
		return Status{}, nil

	case NameCopyFiles:
		if len(args) < 1 {
			return nil, errors.NewValidation(msgMissingPaths)
		}
		return CopyFiles{Patterns: append([]string{}, args...)}, nil

	case NameRemoveFromClipboard:
		if len(args) < 1 {
			return nil, errors.NewValidation(msgMissingPath)
		}
		return RemoveFromClipboard{Path: args[0]}, nil

	case NameSetFolderColor:
		if len(args) < 1 {
			return nil, errors.NewValidation(msgMissingFolderID)
		}
		req := SetFolderColor{FolderID: args[0]}
		if len(args) >= 2 && !clip.IsBlank(args[1]) {
			color := strings.TrimSpace(args[1])
			req.Color = &color
		}
		return req, nil

	case NameFindFoldersWithFile:
		if len(args) < 1 {
			return nil, errors.NewValidation(msgMissingPath)
		}
		return FindFoldersWithFile{Path: args[0]}, nil

	case NameValidateFolderName:
		if len(args) < 1 {
			return nil, errors.NewValidation(msgMissingFolderName)
		}
		req := ValidateFolderName{Name: args[0]}
		if len(args) >= 2 {
			req.ExcludeID = args[1]
		}
		return req, nil

	case NameShowClipboard:
		return ShowClipboard{}, nil
	}

	return nil, errors.NewValidation(fmt.Sprintf("Unknown command: %s", name))
}

// parseSelection reads start, end and optional selected text from args[2:].
// Without selected text the selection covers the full content.
func parseSelection(args []string) (*clip.LineSelection, error) {
	start, err := parseLine(args[2])
	if err != nil {
		return nil, errors.NewValidation("Invalid start line")
	}
	end, err := parseLine(args[3])
	if err != nil {
		return nil, errors.NewValidation("Invalid end line")
	}
	text := args[1]
	if len(args) >= 5 {
		text = args[4]
	}
	return &clip.LineSelection{
		StartLine: start,
		EndLine:   end,
		Text:      text,
	}, nil
}

// parseLine parses an unsigned 32-bit line number. One leading '+' is allowed.
func parseLine(s string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
