package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"linkpad/app"
	"linkpad/app/annotate"
	"linkpad/app/config"
	"linkpad/app/debug"
	"linkpad/app/gateway"
	"linkpad/app/notes"
	"linkpad/app/state"
	"linkpad/tui"
)

const dateLayout = "2006-01-02 15:04"

// newCLIApp creates the CLI application with all commands.
// Without a command the TUI is started.
func newCLIApp(in io.Reader, out io.Writer) *cli.App {
	cliApp := &cli.App{
		Name:    app.Name(),
		Usage:   "Notes in a folder of text files, with clickable links",
		Version: app.FullVersion(),
		Reader:  in,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "Notes directory, remembered for the next start"},
			&cli.BoolFlag{Name: "debug", Usage: "Write debug messages to the log"},
			&cli.BoolFlag{Name: "no-preview", Usage: "Don't fetch link previews"},
		},
		Before: setup,
		After: func(_ *cli.Context) error {
			debug.Close()
			return nil
		},
		Action: runTUI,
		Commands: []*cli.Command{
			listCmd(),
			dirCmd(),
			annotateCmd(),
			versionCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	cliApp.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return cliApp
}

// setup applies the global flags and starts logging
func setup(c *cli.Context) error {
	app.Debug = c.Bool("debug")
	app.NoPreview = c.Bool("no-preview")

	dir, err := app.ConfigDir()
	if err != nil {
		return cli.Exit(fmt.Sprintf("no config directory: %v", err), 1)
	}

	if err := debug.Init(dir, app.Debug); err != nil {
		fmt.Fprintln(c.App.ErrWriter, "logging disabled:", err)
	}

	return nil
}

// openGateway loads the config. A directory given with --dir is
// validated and persisted.
func openGateway(c *cli.Context) (*gateway.Gateway, *config.Config, error) {
	conf, err := config.New()
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("could not load config: %v", err), 1)
	}

	gw := gateway.New(conf)

	if dir := c.String("dir"); dir != "" {
		if _, ok := gw.SelectDirectory(dir); !ok {
			return nil, nil, cli.Exit(fmt.Sprintf("not a directory: %s", dir), 1)
		}
	}

	return gw, conf, nil
}

// runTUI starts the note editor
func runTUI(c *cli.Context) error {
	gw, conf, err := openGateway(c)
	if err != nil {
		return err
	}
	defer func() {
		if err := conf.Flush(); err != nil {
			debug.LogErr("flush meta infos:", err)
		}
	}()

	st := state.New()
	if err := st.Read(); err != nil {
		debug.LogErr("read state:", err)
	}

	m := tui.New(gw, st)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return cli.Exit(fmt.Sprintf("Alas, there's been an error: %v", err), 1)
	}

	return nil
}

// listCmd prints the notes of the notes directory in the order the
// sidebar shows them
func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the notes of the notes directory",
		Action: func(c *cli.Context) error {
			gw, conf, err := openGateway(c)
			if err != nil {
				return err
			}
			defer conf.Flush()

			dir, ok := gw.NotesDirectory()
			if !ok {
				return cli.Exit("no notes directory set, use --dir", 1)
			}

			list := gw.ListNotes(context.Background(), dir)
			notes.AssignSequentialIDs(list)

			for _, note := range list {
				fmt.Fprintf(c.App.Writer, "%3d  %s  %s\n",
					note.ID,
					note.ModTime.Format(dateLayout),
					note.Label(),
				)
			}

			return nil
		},
	}
}

// dirCmd prints or sets the notes directory
func dirCmd() *cli.Command {
	return &cli.Command{
		Name:      "dir",
		Usage:     "Print the notes directory or set it",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "recent", Aliases: []string{"r"}, Usage: "List recently opened directories"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("recent") {
				st := state.New()
				if err := st.Read(); err != nil {
					return cli.Exit(fmt.Sprintf("could not read state: %v", err), 1)
				}
				for _, dir := range st.Recent(state.Directory) {
					fmt.Fprintln(c.App.Writer, dir)
				}
				return nil
			}

			gw, conf, err := openGateway(c)
			if err != nil {
				return err
			}
			defer conf.Flush()

			if c.NArg() > 0 {
				path := c.Args().First()
				dir, ok := gw.SelectDirectory(path)
				if !ok {
					return cli.Exit(fmt.Sprintf("not a directory: %s", path), 1)
				}

				st := state.New()
				if err := st.Read(); err == nil {
					st.Append(state.NewEntry(state.Directory, dir))
					if err := st.Write(); err != nil {
						debug.LogErr("write state:", err)
					}
				}

				fmt.Fprintln(c.App.Writer, dir)
				return nil
			}

			dir, ok := gw.NotesDirectory()
			if !ok {
				return cli.Exit("no notes directory set", 1)
			}

			fmt.Fprintln(c.App.Writer, dir)
			return nil
		},
	}
}

// annotateCmd annotates the text read from stdin the way the editor
// does and prints it in the stored form
func annotateCmd() *cli.Command {
	return &cli.Command{
		Name:  "annotate",
		Usage: "Annotate links, mail addresses and dashes of text read from stdin",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "links", Aliases: []string{"l"}, Usage: "Only print the links found"},
		},
		Action: func(c *cli.Context) error {
			data, err := io.ReadAll(c.App.Reader)
			if err != nil {
				return cli.Exit(fmt.Sprintf("could not read stdin: %v", err), 1)
			}

			doc := annotate.EmbedYouTube(annotate.Parse(string(data)))
			doc, _ = annotate.Reconcile(doc, annotate.NoSelection)

			if c.Bool("links") {
				for _, url := range annotate.URLs(doc) {
					fmt.Fprintln(c.App.Writer, url)
				}
				return nil
			}

			fmt.Fprintln(c.App.Writer, strings.TrimRight(doc.HTML(), "\n"))
			return nil
		},
	}
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version",
		Action: func(c *cli.Context) error {
			app.PrintVersion(c.App.Writer)
			return nil
		},
	}
}
