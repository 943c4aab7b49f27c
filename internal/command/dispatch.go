package command

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pathclip/pathclip/internal/clip"
	"github.com/pathclip/pathclip/internal/errors"
	"github.com/pathclip/pathclip/internal/logging"
	"github.com/pathclip/pathclip/internal/ops"
	"github.com/pathclip/pathclip/internal/sysclip"
)

// Result is what a command produces on success.
type Result struct {
	// Message is the human-readable outcome shown to the user
	Message string `json:"message"`

	// Clipboard is the combined text placed on the clipboard, when the
	// command copied something
	Clipboard string `json:"clipboard,omitempty"`

	// Folders is set by commands that select folders
	Folders []*clip.Folder `json:"folders,omitempty"`
}

// Dispatcher runs requests against one session, one at a time.
type Dispatcher struct {
	mu      sync.Mutex
	session *ops.Session
	sink    sysclip.Writer
	log     zerolog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSink sets where copied text is pushed after a successful copy.
func WithSink(w sysclip.Writer) Option {
	return func(d *Dispatcher) { d.sink = w }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Dispatcher) { d.log = l }
}

// New returns a Dispatcher for session.
func New(session *ops.Session, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		session: session,
		sink:    sysclip.Discard{},
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Session returns the session the dispatcher mutates.
func (d *Dispatcher) Session() *ops.Session {
	return d.session
}

// Handle is the string boundary: it parses and runs a command and renders
// the outcome as text, with failures as "Error: {message}".
func (d *Dispatcher) Handle(name string, args []string) string {
	res, err := d.Run(name, args)
	if err != nil {
		return "Error: " + errors.Message(err)
	}
	return res.Message
}

// Run parses and dispatches a command.
func (d *Dispatcher) Run(name string, args []string) (*Result, error) {
	req, err := Parse(name, args)
	if err != nil {
		d.logFailure(name, err)
		return nil, err
	}
	return d.Dispatch(req)
}

// Dispatch runs a typed request.
func (d *Dispatcher) Dispatch(req Request) (*Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.log.Debug().Str("command", req.Command()).Msg("dispatch")

	res, err := d.dispatch(req)
	if err != nil {
		d.logFailure(req.Command(), err)
		return nil, err
	}
	return res, nil
}

func (d *Dispatcher) dispatch(req Request) (*Result, error) {
	clipboard := d.session.Clipboard
	folders := d.session.Folders

	switch r := req.(type) {
	case CopyPathWithContent:
		text := clipboard.CopyWithContent(r.Path, r.Content, r.Selection)
		return d.copied(text, fmt.Sprintf("Copied %d files to clipboard", clipboard.Count())), nil

	case ClearClipboard:
		clipboard.Clear()
		return &Result{Message: "Clipboard cleared"}, nil

	case CreateFolder:
		return message(folders.Create(ops.CreateFolderInput{Name: r.Name, Files: r.Files}))

	case DeleteFolder:
		return message(folders.Delete(r.FolderID))

	case RenameFolder:
		return message(folders.Rename(r.FolderID, r.NewName))

	case AddFileToFolder:
		return message(folders.AddFile(r.FolderID, r.Path))

	case RemoveFileFromFolder:
		return message(folders.RemoveFile(r.FolderID, r.Path))

	case CopyFolderContents:
		text, err := folders.CopyContents(r.FolderID)
		if err != nil {
			return nil, err
		}
		return d.copied(text, "Copied folder contents to clipboard"), nil

	case ListFolders:
		list := folders.List()
		return &Result{Message: folderLines(list), Folders: list}, nil

	case Status:
		return &Result{Message: d.session.StatusLine()}, nil

	case CopyFiles:
		paths, err := ops.ExpandPaths(r.Patterns)
		if err != nil {
			return nil, err
		}
		text, err := clipboard.CopyMany(paths)
		if err != nil {
			return nil, err
		}
		return d.copied(text, fmt.Sprintf("Copied %d files to clipboard", clipboard.Count())), nil

	case RemoveFromClipboard:
		if !clipboard.Remove(r.Path) {
			return nil, errors.NewNotFound("File not found in clipboard")
		}
		return &Result{Message: fmt.Sprintf("File '%s' removed from clipboard", r.Path)}, nil

	case SetFolderColor:
		return message(folders.SetColor(r.FolderID, r.Color))

	case FindFoldersWithFile:
		list := folders.FoldersContaining(r.Path)
		return &Result{Message: folderLines(list), Folders: list}, nil

	case ValidateFolderName:
		if err := folders.ValidateName(r.Name, r.ExcludeID); err != nil {
			return nil, err
		}
		return &Result{Message: fmt.Sprintf("Folder name '%s' is valid", r.Name)}, nil

	case ShowClipboard:
		if clipboard.Count() == 0 {
			return &Result{Message: clipboard.StatusText()}, nil
		}
		return &Result{Message: clipboard.Render()}, nil
	}

	return nil, errors.NewInternal(fmt.Errorf("unhandled request %T", req))
}

// copied pushes text to the sink and builds the result. A sink failure only
// gets logged; the in-memory copy already succeeded.
func (d *Dispatcher) copied(text, msg string) *Result {
	if err := d.sink.WriteAll(text); err != nil {
		d.log.Warn().Err(err).Msg("system clipboard write failed")
	}
	return &Result{Message: msg, Clipboard: text}
}

func (d *Dispatcher) logFailure(name string, err error) {
	var ev *zerolog.Event
	if errors.Is(err, errors.ErrInternal) {
		ev = d.log.Error()
	} else {
		ev = d.log.Info()
	}
	ev.Str("command", name).Err(err).Msg("command failed")
}

func message(msg string, err error) (*Result, error) {
	if err != nil {
		return nil, err
	}
	return &Result{Message: msg}, nil
}

// FolderLine renders a folder as "{id}: {name} ({n} files)".
func FolderLine(f *clip.Folder) string {
	return fmt.Sprintf("%s: %s (%d files)", f.ID, f.Name, f.FileCount())
}

func folderLines(list []*clip.Folder) string {
	lines := make([]string, len(list))
	for i, f := range list {
		lines[i] = FolderLine(f)
	}
	return strings.Join(lines, "\n")
}
