package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pathclip/pathclip/internal/command"
)

var copyPathWithContentToolDef = mcp.NewTool(command.NameCopyPathWithContent,
	mcp.WithDescription("Add a file's text to the aggregated clipboard. A later copy of the same path replaces the earlier entry and moves it to the end. Returns the combined clipboard text."),
	mcp.WithString("path", mcp.Required(), mcp.Description("File path; also the entry key")),
	mcp.WithString("content", mcp.Required(), mcp.Description("Full text of the file")),
	mcp.WithNumber("start_line", mcp.Description("First selected line (1-based, unsigned); requires end_line")),
	mcp.WithNumber("end_line", mcp.Description("Last selected line; requires start_line")),
	mcp.WithString("selected_text", mcp.Description("Text of the selection; defaults to content")),
)

var clearClipboardToolDef = mcp.NewTool(command.NameClearClipboard,
	mcp.WithDescription("Remove every entry from the aggregated clipboard."),
	mcp.WithDestructiveHintAnnotation(true),
)

var createFolderToolDef = mcp.NewTool(command.NameCreateFolder,
	mcp.WithDescription("Create a named folder of file paths. Names are case-sensitive and must be unique."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Folder name")),
	mcp.WithArray("files", mcp.WithStringItems(), mcp.Description("Initial file paths; duplicates are dropped")),
)

var deleteFolderToolDef = mcp.NewTool(command.NameDeleteFolder,
	mcp.WithDescription("Delete a folder by id."),
	mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder id")),
	mcp.WithDestructiveHintAnnotation(true),
)

var renameFolderToolDef = mcp.NewTool(command.NameRenameFolder,
	mcp.WithDescription("Rename a folder."),
	mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder id")),
	mcp.WithString("new_name", mcp.Required(), mcp.Description("New folder name")),
)

var addFileToFolderToolDef = mcp.NewTool(command.NameAddFileToFolder,
	mcp.WithDescription("Add a file path to a folder. Fails if the folder already holds it."),
	mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder id")),
	mcp.WithString("path", mcp.Required(), mcp.Description("File path")),
)

var removeFileFromFolderToolDef = mcp.NewTool(command.NameRemoveFileFromFolder,
	mcp.WithDescription("Remove a file path from a folder."),
	mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder id")),
	mcp.WithString("path", mcp.Required(), mcp.Description("File path")),
)

var copyFolderContentsToolDef = mcp.NewTool(command.NameCopyFolderContents,
	mcp.WithDescription("Read every file in a folder from disk and return the combined text. Unreadable files are skipped. The aggregated clipboard is not changed."),
	mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder id")),
)

var listFoldersToolDef = mcp.NewTool(command.NameListFolders,
	mcp.WithDescription("List folders in creation order."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var statusToolDef = mcp.NewTool(command.NameStatus,
	mcp.WithDescription("Summarize the clipboard and folder counts."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var copyFilesToolDef = mcp.NewTool(command.NameCopyFiles,
	mcp.WithDescription("Read files from disk into the aggregated clipboard. Paths may be glob patterns (** matches across directories). Unreadable files are skipped; fails only when none could be read."),
	mcp.WithArray("paths", mcp.Required(), mcp.WithStringItems(), mcp.Description("File paths or glob patterns")),
)

var removeFromClipboardToolDef = mcp.NewTool(command.NameRemoveFromClipboard,
	mcp.WithDescription("Drop one file from the aggregated clipboard."),
	mcp.WithString("path", mcp.Required(), mcp.Description("File path the entry was copied from")),
)

var setFolderColorToolDef = mcp.NewTool(command.NameSetFolderColor,
	mcp.WithDescription("Set a folder's display color, or clear it when color is omitted."),
	mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder id")),
	mcp.WithString("color", mcp.Description("Color name or value")),
)

var findFoldersWithFileToolDef = mcp.NewTool(command.NameFindFoldersWithFile,
	mcp.WithDescription("List the folders that contain a file path."),
	mcp.WithString("path", mcp.Required(), mcp.Description("File path")),
	mcp.WithReadOnlyHintAnnotation(true),
)

var validateFolderNameToolDef = mcp.NewTool(command.NameValidateFolderName,
	mcp.WithDescription("Check a folder name (empty, length, forbidden characters, collisions) without changing anything."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Candidate name")),
	mcp.WithString("exclude_id", mcp.Description("Folder id to ignore for collisions, e.g. the folder being renamed")),
	mcp.WithReadOnlyHintAnnotation(true),
)

var showClipboardToolDef = mcp.NewTool(command.NameShowClipboard,
	mcp.WithDescription("Return the combined clipboard text."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var runCommandToolDef = mcp.NewTool(ToolRunCommand,
	mcp.WithDescription("Run a command by name with positional string arguments and return its text result, e.g. command=rename_folder args=[id, name]."),
	mcp.WithString("command", mcp.Required(), mcp.Description("Command name")),
	mcp.WithArray("args", mcp.WithStringItems(), mcp.Description("Positional arguments")),
)
