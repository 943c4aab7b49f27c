// Package mcp exposes the pathclip commands as MCP tools over stdio, so an
// editor host can drive one long-lived session.
package mcp

import (
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pathclip/pathclip/internal/command"
	"github.com/pathclip/pathclip/internal/config"
)

// ToolRunCommand takes a raw command name and string arguments.
const ToolRunCommand = "run_command"

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	command.NameCopyPathWithContent: {
		def:     copyPathWithContentToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCopyPathWithContent },
	},
	command.NameClearClipboard: {
		def:     clearClipboardToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleClearClipboard },
	},
	command.NameCreateFolder: {
		def:     createFolderToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCreateFolder },
	},
	command.NameDeleteFolder: {
		def:     deleteFolderToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDeleteFolder },
	},
	command.NameRenameFolder: {
		def:     renameFolderToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRenameFolder },
	},
	command.NameAddFileToFolder: {
		def:     addFileToFolderToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAddFileToFolder },
	},
	command.NameRemoveFileFromFolder: {
		def:     removeFileFromFolderToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRemoveFileFromFolder },
	},
	command.NameCopyFolderContents: {
		def:     copyFolderContentsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCopyFolderContents },
	},
	command.NameListFolders: {
		def:     listFoldersToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleListFolders },
	},
	command.NameStatus: {
		def:     statusToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleStatus },
	},
	command.NameCopyFiles: {
		def:     copyFilesToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCopyFiles },
	},
	command.NameRemoveFromClipboard: {
		def:     removeFromClipboardToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRemoveFromClipboard },
	},
	command.NameSetFolderColor: {
		def:     setFolderColorToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSetFolderColor },
	},
	command.NameFindFoldersWithFile: {
		def:     findFoldersWithFileToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFindFoldersWithFile },
	},
	command.NameValidateFolderName: {
		def:     validateFolderNameToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleValidateFolderName },
	},
	command.NameShowClipboard: {
		def:     showClipboardToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleShowClipboard },
	},
	ToolRunCommand: {
		def:     runCommandToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRunCommand },
	},
}

// AllToolNames returns every valid tool name, sorted.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates an MCP server with the pathclip tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(d *command.Dispatcher, cfg *config.Config, version string) *server.MCPServer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := server.NewMCPServer(
		"pathclip",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(d)

	disabled := make(map[string]bool, len(cfg.DisabledTools))
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run serves the dispatcher over the stdio transport until stdin closes.
func Run(d *command.Dispatcher, cfg *config.Config, version string) error {
	return server.ServeStdio(NewServer(d, cfg, version))
}
