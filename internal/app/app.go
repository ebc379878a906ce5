// Package app wires the editor core to a terminal: it loads the file,
// runs the render, poll and apply loop, and saves on request.
package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dshills/red/internal/config"
	"github.com/dshills/red/internal/editor"
	"github.com/dshills/red/internal/engine/rope"
	"github.com/dshills/red/internal/input/key"
	"github.com/dshills/red/internal/input/keymap"
	"github.com/dshills/red/internal/logging"
	"github.com/dshills/red/internal/renderer"
	"github.com/dshills/red/internal/renderer/backend"
)

// saveKey is handled by the application rather than the editor core.
var saveKey = key.MustParse("<C-s>")

// Options configures the application.
type Options struct {
	// Path is the file to edit. Empty starts an unnamed buffer.
	Path string

	// Config holds the settings. Nil means config.Default().
	Config *config.Config

	// Backend is the display. Required.
	Backend backend.Backend

	// Keymaps translates keys. Nil means keymap.Default().
	Keymaps *keymap.Set

	// Logger receives diagnostics. Nil discards them.
	Logger *logging.Logger
}

// Application runs one editing session.
type Application struct {
	path    string
	text    string
	config  *config.Config
	backend backend.Backend
	keymaps *keymap.Set
	log     *logging.Logger

	state    *editor.State
	renderer *renderer.Renderer

	savedRevision uint64
	dirty         bool // carried across state rebuilds
	quitArmed     bool
	message       string
}

// New creates an application and loads the file. The backend is not
// touched until Run.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, &InitError{Component: "backend", Err: errors.New("no backend")}
	}
	app := &Application{
		path:    opts.Path,
		config:  opts.Config,
		backend: opts.Backend,
		keymaps: opts.Keymaps,
		log:     opts.Logger,
	}
	if app.config == nil {
		app.config = config.Default()
	}
	if app.keymaps == nil {
		app.keymaps = keymap.Default()
	}
	if app.log == nil {
		app.log = logging.Nop()
	}
	app.log = app.log.WithFields(map[string]any{
		"component": "app",
		"session":   uuid.NewString(),
	})

	text, replaced, err := readFile(opts.Path)
	if err != nil {
		return nil, err
	}
	if replaced {
		app.log.Warn("%s is not valid UTF-8; invalid bytes replaced", opts.Path)
		app.message = "invalid UTF-8 replaced"
	}
	app.text = text
	return app, nil
}

// Run initializes the backend and processes events until the user quits
// or the backend has no more events.
func (app *Application) Run() error {
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	lines := rope.FromString(app.text).LineCount()
	app.renderer = renderer.New(app.backend, renderer.Config{
		ShowLineNumbers: app.config.Editor.LineNumbers,
		GutterWidth:     renderer.GutterWidth(app.config.Editor.LineNumbers, lines),
	})
	app.state = app.newState(app.text)
	app.log.Info("editing %q, %d lines", app.path, lines)

	for {
		app.render()
		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventNone:
			app.log.Info("input closed")
			return nil
		case backend.EventResize:
			app.resize()
		case backend.EventKey:
			err := app.handleKey(ev.Key)
			if errors.Is(err, editor.ErrQuit) {
				app.log.Info("quit")
				return nil
			}
			if err != nil {
				app.log.Error("%v", err)
				return err
			}
		}
	}
}

func (app *Application) newState(text string) *editor.State {
	w, h := app.backend.Size()
	return editor.New(app.renderer.TextArea(w, h), text,
		editor.WithTabWidth(app.config.Editor.TabWidth),
		editor.WithLogger(app.log.WithComponent("editor")),
	)
}

// resize rebuilds the editor for the new screen size. The text and the
// modified flag survive; the cursor returns to the top.
func (app *Application) resize() {
	app.dirty = app.Modified()
	app.state = app.newState(app.state.Document().TextWithLineEndings())
	app.savedRevision = app.state.Revision()
	app.log.Debug("resized, editor rebuilt")
}

func (app *Application) handleKey(ev key.Event) error {
	app.message = ""
	if ev == saveKey {
		if err := app.Save(); err != nil {
			app.message = err.Error()
			app.log.Warn("%v", err)
		}
		return nil
	}

	cmd, ok := app.keymaps.Translate(app.state.Mode(), ev)
	if !ok {
		app.log.Debug("unbound key %s in %s mode", ev, app.state.Mode())
		return nil
	}

	if cmd.Kind == editor.CmdQuit && app.Modified() && !app.quitArmed {
		app.quitArmed = true
		app.message = fmt.Sprintf("%v, quit again to discard", ErrUnsavedChanges)
		return nil
	}
	app.quitArmed = false

	err := app.state.Apply(cmd)
	switch {
	case err == nil, errors.Is(err, editor.ErrQuit):
		return err
	case errors.Is(err, editor.ErrCommandNotAllowed):
		app.log.Debug("%v", err)
		return nil
	default:
		return &OperationError{Op: "apply", Target: cmd.String(), Err: err}
	}
}

func (app *Application) render() {
	name := ""
	if app.path != "" {
		name = filepath.Base(app.path)
	}
	app.renderer.Render(app.state, renderer.Status{
		Name:     name,
		Modified: app.Modified(),
		Message:  app.message,
	})
}

// Save writes the document to its file, restoring the line ending style
// it was loaded with.
func (app *Application) Save() error {
	if err := writeFile(app.path, app.state.Document().TextWithLineEndings()); err != nil {
		return err
	}
	app.savedRevision = app.state.Revision()
	app.dirty = false
	app.message = fmt.Sprintf("%q written", filepath.Base(app.path))
	app.log.Info("saved %s", app.path)
	return nil
}

// Modified reports whether there are unsaved changes.
func (app *Application) Modified() bool {
	return app.dirty || app.state.Revision() != app.savedRevision
}

// State returns the editor state. It is nil before Run.
func (app *Application) State() *editor.State {
	return app.state
}

// Message returns the status message shown on the last frame.
func (app *Application) Message() string {
	return app.message
}
