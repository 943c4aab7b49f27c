package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/pathclip/pathclip/internal/clip"
	"github.com/pathclip/pathclip/internal/command"
	"github.com/pathclip/pathclip/internal/config"
	"github.com/pathclip/pathclip/internal/errors"
	"github.com/pathclip/pathclip/internal/mcp"
	"github.com/pathclip/pathclip/internal/ops"
	"github.com/pathclip/pathclip/internal/sysclip"
)

// maxSessionLine bounds one JSON request line in session mode.
const maxSessionLine = 16 << 20

// newCLIApp creates the CLI application with all commands.
func newCLIApp(cfg *config.Config, log zerolog.Logger) *cli.App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	app := &cli.App{
		Name:    "pathclip",
		Usage:   "Aggregate file paths and code into one clipboard and keep named folders of files",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-clipboard", Usage: "Do not write copied text to the system clipboard"},
		},
		Commands: []*cli.Command{
			serveCmd(cfg, log),
			execCmd(cfg, log),
			sessionCmd(cfg, log),
			commandsCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// newDispatcher builds a fresh session and dispatcher for one invocation.
func newDispatcher(c *cli.Context, cfg *config.Config, log zerolog.Logger) *command.Dispatcher {
	sink := sysclip.New(cfg.DisableSystemClipboard || c.Bool("no-clipboard"))
	return command.New(
		ops.NewSessionFromConfig(cfg),
		command.WithSink(sink),
		command.WithLogger(log),
	)
}

// serveCmd creates the serve command.
func serveCmd(cfg *config.Config, log zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the commands as MCP tools over stdio (default when stdin is piped)",
		Action: func(c *cli.Context) error {
			if err := mcp.Run(newDispatcher(c, cfg, log), cfg, Version); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		},
	}
}

// execCmd creates the exec command.
func execCmd(cfg *config.Config, log zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "Run one command against a fresh session and print the result",
		ArgsUsage: "<command> [args...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Print the full result as JSON"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewValidation("command name is required"))
			}

			d := newDispatcher(c, cfg, log)
			res, err := d.Run(c.Args().First(), c.Args().Tail())
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, res)
			}
			return printResult(c.App.Writer, res)
		},
	}
}

// sessionReply is one line of session output.
type sessionReply struct {
	Output string `json:"output"`
	Error  bool   `json:"error,omitempty"`
}

// sessionCmd creates the session command.
func sessionCmd(cfg *config.Config, log zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "session",
		Usage: `Read ["command", "arg", ...] JSON arrays from stdin, one per line, and print one JSON reply per line`,
		Action: func(c *cli.Context) error {
			d := newDispatcher(c, cfg, log)
			enc := json.NewEncoder(c.App.Writer)

			scanner := bufio.NewScanner(c.App.Reader)
			scanner.Buffer(make([]byte, 0, 64*1024), maxSessionLine)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				var reply sessionReply
				var argv []string
				if err := json.Unmarshal([]byte(line), &argv); err != nil || len(argv) == 0 {
					reply = sessionReply{Output: "Error: expected a JSON array of strings", Error: true}
				} else if res, err := d.Run(argv[0], argv[1:]); err != nil {
					reply = sessionReply{Output: "Error: " + errors.Message(err), Error: true}
				} else {
					reply = sessionReply{Output: res.Message}
				}

				if err := enc.Encode(reply); err != nil {
					return outputError(errors.NewInternal(err))
				}
			}
			if err := scanner.Err(); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		},
	}
}

// commandsCmd creates the commands command.
func commandsCmd() *cli.Command {
	return &cli.Command{
		Name:  "commands",
		Usage: "List the commands exec and session accept",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Print as JSON"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("json") {
				return outputJSON(c.App.Writer, command.Specs)
			}
			for _, s := range command.Specs {
				usage := strings.TrimSpace(s.Name + " " + s.Args)
				fmt.Fprintf(c.App.Writer, "%s\n    %s\n", usage, s.Summary)
			}
			return nil
		},
	}
}

// Helper functions

// printResult writes a result as text. Folder listings get one line per
// folder with the name in the folder's color.
func printResult(w io.Writer, res *command.Result) error {
	if len(res.Folders) == 0 {
		_, err := fmt.Fprintln(w, res.Message)
		return err
	}
	for _, f := range res.Folders {
		if _, err := fmt.Fprintln(w, coloredFolderLine(f)); err != nil {
			return err
		}
	}
	return nil
}

// folderColors maps folder color names to terminal colors.
var folderColors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"purple":  color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// coloredFolderLine is command.FolderLine with the name colored when the
// folder has a known color. color.NoColor turns this off for non-terminals.
func coloredFolderLine(f *clip.Folder) string {
	if f.Color == nil {
		return command.FolderLine(f)
	}
	attr, ok := folderColors[strings.ToLower(*f.Color)]
	if !ok {
		return command.FolderLine(f)
	}
	name := color.New(attr, color.Bold).Sprint(f.Name)
	return fmt.Sprintf("%s: %s (%d files)", f.ID, name, f.FileCount())
}

// outputJSON marshals result to w as JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	var e *errors.Error
	if errors.As(err, &e) {
		return cli.Exit(fmt.Sprintf("[%s] %s", e.Code, e.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
