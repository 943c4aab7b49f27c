package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pathclip/pathclip/internal/command"
	"github.com/pathclip/pathclip/internal/errors"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	d *command.Dispatcher
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(d *command.Dispatcher) *Handlers {
	return &Handlers{d: d}
}

// Request types for each tool. Fields a command requires are pointers so
// an absent argument and an empty one stay distinguishable; the handlers
// lay them out as positional arguments and leave validation to
// command.Parse, the same path run_command and the CLI take.

// CopyPathWithContentRequest represents the arguments for copy_path_with_content.
// Line numbers are left undecoded so any JSON value reaches the line parser.
type CopyPathWithContentRequest struct {
	Path         *string `json:"path"`
	Content      *string `json:"content"`
	StartLine    any     `json:"start_line,omitempty"`
	EndLine      any     `json:"end_line,omitempty"`
	SelectedText *string `json:"selected_text,omitempty"`
}

// CreateFolderRequest represents the arguments for create_folder.
type CreateFolderRequest struct {
	Name  *string  `json:"name"`
	Files []string `json:"files,omitempty"`
}

// FolderRequest represents the arguments of tools that target one folder.
type FolderRequest struct {
	FolderID *string `json:"folder_id"`
}

// RenameFolderRequest represents the arguments for rename_folder.
type RenameFolderRequest struct {
	FolderID *string `json:"folder_id"`
	NewName  *string `json:"new_name"`
}

// FolderFileRequest represents the arguments for add_file_to_folder and
// remove_file_from_folder.
type FolderFileRequest struct {
	FolderID *string `json:"folder_id"`
	Path     *string `json:"path"`
}

// CopyFilesRequest represents the arguments for copy_files.
type CopyFilesRequest struct {
	Paths []string `json:"paths"`
}

// PathRequest represents the arguments of tools that take one file path.
type PathRequest struct {
	Path *string `json:"path"`
}

// SetFolderColorRequest represents the arguments for set_folder_color.
type SetFolderColorRequest struct {
	FolderID *string `json:"folder_id"`
	Color    *string `json:"color,omitempty"`
}

// ValidateFolderNameRequest represents the arguments for validate_folder_name.
type ValidateFolderNameRequest struct {
	Name      *string `json:"name"`
	ExcludeID *string `json:"exclude_id,omitempty"`
}

// RunCommandRequest represents the arguments for run_command.
type RunCommandRequest struct {
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// HandleCopyPathWithContent handles the copy_path_with_content tool call.
func (h *Handlers) HandleCopyPathWithContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CopyPathWithContentRequest](req)
	if err != nil {
		return errorResult(errors.NewValidation(err.Error())), nil
	}

	args := positional(input.Path, input.Content)
	if len(args) == 2 && input.StartLine != nil {
		args = append(args, lineArg(input.StartLine))
		if input.EndLine != nil {
			args = append(args, lineArg(input.EndLine))
			if input.SelectedText != nil {
				args = append(args, *input.SelectedText)
			}
		}
	}
	return h.run(command.NameCopyPathWithContent, args)
}

// HandleClearClipboard handles the clear_clipboard tool call.
func (h *Handlers) HandleClearClipboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(command.ClearClipboard{})
}

// HandleCreateFolder handles the create_folder tool call.
func (h *Handlers) HandleCreateFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CreateFolderRequest](req)
	if err != nil {
		return errorResult(errors.NewValidation(err.Error())), nil
	}
	args := positional(input.Name)
	if len(args) == 1 {
		args = append(args, input.Files...)
	}
	return h.run(command.NameCreateFolder, args)
}

// HandleDeleteFolder handles the delete_folder tool call.
func (h *Handlers) HandleDeleteFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.folderTool(command.NameDeleteFolder, req)
}

// HandleRenameFolder handles the rename_folder tool call.
func (h *Handlers) HandleRenameFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RenameFolderRequest](req)
	if err != nil {
		return errorResult(errors.NewValidation(err.Error())), nil
	}
	return h.run(command.NameRenameFolder, positional(input.FolderID, input.NewName))
}

// HandleAddFileToFolder handles the add_file_to_folder tool call.
func (h *Handlers) HandleAddFileToFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.folderFileTool(command.NameAddFileToFolder, req)
}

// HandleRemoveFileFromFolder handles the remove_file_from_folder tool call.
func (h *Handlers) HandleRemoveFileFromFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.folderFileTool(command.NameRemoveFileFromFolder, req)
}

// HandleCopyFolderContents handles the copy_folder_contents tool call.
func (h *Handlers) HandleCopyFolderContents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.folderTool(command.NameCopyFolderContents, req)
}

// HandleListFolders handles the list_folders tool call.
func (h *Handlers) HandleListFolders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(command.ListFolders{})
}

// HandleStatus handles the status tool call.
func (h *Handlers) HandleStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(command.Status{})
}

// HandleCopyFiles handles the copy_files tool call.
func (h *Handlers) HandleCopyFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CopyFilesRequest](req)
	if err != nil {
		return errorResult(errors.NewValidation(err.Error())), nil
	}
	return h.run(command.NameCopyFiles, input.Paths)
}

// HandleRemoveFromClipboard handles the remove_from_clipboard tool call.
func (h *Handlers) HandleRemoveFromClipboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.pathTool(command.NameRemoveFromClipboard, req)
}

// HandleSetFolderColor handles the set_folder_color tool call.
func (h *Handlers) HandleSetFolderColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SetFolderColorRequest](req)
	if err != nil {
		return errorResult(errors.NewValidation(err.Error())), nil
	}
	return h.run(command.NameSetFolderColor, positional(input.FolderID, input.Color))
}

// HandleFindFoldersWithFile handles the find_folders_with_file tool call.
func (h *Handlers) HandleFindFoldersWithFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.pathTool(command.NameFindFoldersWithFile, req)
}

// HandleValidateFolderName handles the validate_folder_name tool call.
func (h *Handlers) HandleValidateFolderName(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ValidateFolderNameRequest](req)
	if err != nil {
		return errorResult(errors.NewValidation(err.Error())), nil
	}
	return h.run(command.NameValidateFolderName, positional(input.Name, input.ExcludeID))
}

// HandleShowClipboard handles the show_clipboard tool call.
func (h *Handlers) HandleShowClipboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.dispatch(command.ShowClipboard{})
}

// HandleRunCommand handles the run_command tool call. The result is the
// plain text a host would show, with failures rendered as "Error: {message}".
func (h *Handlers) HandleRunCommand(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RunCommandRequest](req)
	if err != nil {
		return errorResult(errors.NewValidation(err.Error())), nil
	}

	res, err := h.d.Run(input.Command, input.Args)
	if err != nil {
		result := mcp.NewToolResultText("Error: " + errors.Message(err))
		result.IsError = true
		return result, nil
	}
	return mcp.NewToolResultText(res.Message), nil
}

func (h *Handlers) folderTool(name string, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FolderRequest](req)
	if err != nil {
		return errorResult(errors.NewValidation(err.Error())), nil
	}
	return h.run(name, positional(input.FolderID))
}

func (h *Handlers) folderFileTool(name string, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FolderFileRequest](req)
	if err != nil {
		return errorResult(errors.NewValidation(err.Error())), nil
	}
	return h.run(name, positional(input.FolderID, input.Path))
}

func (h *Handlers) pathTool(name string, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PathRequest](req)
	if err != nil {
		return errorResult(errors.NewValidation(err.Error())), nil
	}
	return h.run(name, positional(input.Path))
}

// run parses positional arguments exactly like run_command does and
// dispatches the typed request.
func (h *Handlers) run(name string, args []string) (*mcp.CallToolResult, error) {
	r, err := command.Parse(name, args)
	if err != nil {
		return errorResult(err), nil
	}
	return h.dispatch(r)
}

func (h *Handlers) dispatch(r command.Request) (*mcp.CallToolResult, error) {
	res, err := h.d.Dispatch(r)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(res)
}

// positional collects arguments up to the first absent one.
func positional(fields ...*string) []string {
	args := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == nil {
			break
		}
		args = append(args, *f)
	}
	return args
}

// lineArg renders a decoded JSON line number the way it would be typed on a
// command line. Numbers keep their exact decimal form so fractions and
// negatives fail the line parser instead of being truncated.
func lineArg(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprint(n)
	}
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are never exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var e *errors.Error
	if errors.As(err, &e) {
		errorObj := map[string]any{
			"code":    e.Code,
			"message": e.Message,
		}
		if e.Code != errors.ErrInternal && e.Details != nil {
			errorObj["details"] = e.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
