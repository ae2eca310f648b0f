package app

import (
	"context"
	"errors"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dshills/rite/internal/config"
	"github.com/dshills/rite/internal/engine"
	"github.com/dshills/rite/internal/input"
	"github.com/dshills/rite/internal/renderer"
	"github.com/dshills/rite/internal/state"
)

// Application ties one document to the terminal, the configuration and the
// state file.
type Application struct {
	opts       Options
	configPath string
	cfg        config.Config

	logger   *Logger
	closeLog func() error

	keymap *input.Keymap
	doc    *Document
	store  *state.Store

	screen  tcell.Screen
	view    *renderer.View
	message string

	running      atomic.Bool
	shutdownOnce sync.Once
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses
	// config.DefaultPath.
	ConfigPath string

	// File is the file to edit. Empty opens a scratch buffer.
	File string

	// Debug verifies the cursor after every command and logs at debug level.
	Debug bool

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// Replay marks a headless run driven by a key script. The state file
	// is neither read nor written, so a script gives the same result on
	// the same file every time.
	Replay bool
}

// configReload carries the watcher's result into the event loop.
type configReload struct {
	cfg config.Config
	err error
}

// New creates an Application: it resolves configuration, opens the log,
// loads the document and restores its cursor. It does not touch the
// terminal.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts, configPath: opts.ConfigPath}
	if app.configPath == "" {
		app.configPath = config.DefaultPath()
	}

	cfg, err := config.Resolve(app.configPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.Debug {
		cfg.Logging.Level = "debug"
	}
	app.cfg = cfg

	app.logger, app.closeLog, err = OpenLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	app.keymap, err = input.NewKeymap(input.Bindings{Save: cfg.Keys.Save, Quit: cfg.Keys.Quit})
	if err != nil {
		app.Shutdown()
		return nil, NewOperationError("load", "key bindings", err)
	}

	var engineOpts []engine.Option
	if opts.Debug {
		engineOpts = append(engineOpts, engine.WithVerify())
	}
	if opts.File == "" {
		app.doc = NewScratchDocument(engineOpts...)
	} else {
		app.doc, err = OpenDocument(opts.File, engineOpts...)
		if err != nil {
			app.Shutdown()
			return nil, err
		}
	}

	if cfg.State.File != "" && !opts.Replay {
		app.store = state.NewStore(cfg.State.File)
	}
	app.restoreCursor()

	app.logger.Info("opened %q (%d chars, %d lines)", app.doc.Path, app.doc.Session.Len(), app.doc.Session.LineCount())
	return app, nil
}

// restoreCursor moves the cursor to where the file was last left.
func (app *Application) restoreCursor() {
	if !app.cfg.Editor.RestoreCursor || app.store == nil || app.doc.IsScratch() {
		return
	}
	p, ok, err := app.store.Load(app.doc.Path)
	if err != nil {
		app.logger.WithComponent("state").Warn("restoring cursor: %v", err)
		return
	}
	if !ok {
		return
	}
	app.doc.Session.MoveTo(p)
	line, col := app.doc.Session.CursorPosition()
	if got := (engine.Point{Line: line, Column: col}); got.Compare(p) != 0 {
		app.logger.WithComponent("state").Debug("stored cursor %s clamped to %s", p, got)
	}
}

// Document returns the document being edited.
func (app *Application) Document() *Document {
	return app.doc
}

// Config returns the active configuration.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Message returns the status message shown below the text.
func (app *Application) Message() string {
	return app.message
}

// Run opens the terminal and runs the event loop until the user quits or
// ctx is done. It returns ErrQuit after a quit binding and nil when ctx
// ends the loop. Stdin and stdout must both be terminals.
func (app *Application) Run(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return NewOperationError("init", "terminal", err)
	}
	if err := screen.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer screen.Fini()
	screen.EnablePaste()

	return app.RunScreen(ctx, screen)
}

// RunScreen runs the event loop on an initialized screen. The caller keeps
// ownership of the screen.
func (app *Application) RunScreen(ctx context.Context, screen tcell.Screen) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	palette, err := app.cfg.Theme.Palette()
	if err != nil {
		return err
	}
	app.screen = screen
	app.view = renderer.NewView(screen, renderer.Options{
		TabWidth: app.cfg.Editor.TabWidth,
		Theme:    renderer.ThemeFromPalette(palette),
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
	}()
	app.watchConfig(ctx)

	app.logger.Debug("event loop started")
	return app.eventLoop(ctx)
}

// eventLoop is the main application loop.
func (app *Application) eventLoop(ctx context.Context) error {
	for {
		app.draw()

		switch ev := app.screen.PollEvent().(type) {
		case nil:
			return nil

		case *tcell.EventResize:
			app.screen.Sync()

		case *tcell.EventKey:
			if err := app.handleKey(ev); err != nil {
				if !errors.Is(err, ErrQuit) {
					app.logger.Error("%v", err)
				}
				return err
			}

		case *tcell.EventInterrupt:
			if r, ok := ev.Data().(configReload); ok {
				app.applyConfig(r.cfg, r.err)
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
		}
	}
}

func (app *Application) handleKey(ev *tcell.EventKey) error {
	k := input.FromTcell(ev)
	a := app.keymap.Resolve(k)
	app.logger.Debug("key %s -> %s", k, a)
	return app.apply(a)
}

// apply performs one action. A panic raised by the session, which only
// happens when verification finds a defect, comes back as a
// *RecoveredPanicError.
func (app *Application) apply(a input.Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}
	}()

	switch a.Kind {
	case input.ActionEdit:
		app.doc.Session.Apply(a.Command)
		app.message = ""
	case input.ActionSave:
		app.save()
	case input.ActionQuit:
		return ErrQuit
	}
	return nil
}

// save writes the document and reports the outcome on the status line.
func (app *Application) save() {
	if err := app.doc.Save(); err != nil {
		app.logger.Error("%v", err)
		app.message = err.Error()
		return
	}
	app.logger.Info("saved %s", app.doc.Path)
	app.message = "saved"
	app.saveState()
}

func (app *Application) draw() {
	app.view.Draw(app.doc.Session, renderer.Status{
		Name:    app.doc.Name,
		Dirty:   app.doc.IsModified(),
		Message: app.message,
	})
}

// watchConfig starts reloading the settings file on change. Results reach
// the event loop as interrupt events.
func (app *Application) watchConfig(ctx context.Context) {
	if app.configPath == "" {
		return
	}
	w, err := config.NewWatcher(app.configPath)
	if err != nil {
		app.logger.WithComponent("config").Warn("not watching %s: %v", app.configPath, err)
		return
	}
	screen := app.screen
	go w.Run(ctx, func(cfg config.Config, err error) {
		_ = screen.PostEvent(tcell.NewEventInterrupt(configReload{cfg: cfg, err: err}))
	})
}

// applyConfig installs a reloaded configuration. Display settings, key
// bindings and the log level take effect immediately; an invalid file
// leaves the current settings in place.
func (app *Application) applyConfig(cfg config.Config, err error) {
	log := app.logger.WithComponent("config")
	if err != nil {
		log.Warn("reload failed: %v", err)
		app.message = "config: " + err.Error()
		return
	}

	palette, err := cfg.Theme.Palette()
	if err != nil {
		log.Warn("reload failed: %v", err)
		app.message = "config: " + err.Error()
		return
	}
	km, err := input.NewKeymap(input.Bindings{Save: cfg.Keys.Save, Quit: cfg.Keys.Quit})
	if err != nil {
		log.Warn("reload failed: %v", err)
		app.message = "config: " + err.Error()
		return
	}

	app.keymap = km
	app.view.SetTabWidth(cfg.Editor.TabWidth)
	app.view.SetTheme(renderer.ThemeFromPalette(palette))
	if app.logger != NullLogger && !app.opts.Debug && app.opts.LogLevel == "" {
		app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	}
	app.cfg.Editor.TabWidth = cfg.Editor.TabWidth
	app.cfg.Theme = cfg.Theme
	app.cfg.Keys = cfg.Keys

	log.Info("reloaded")
	app.message = "config reloaded"
}

// saveState remembers the cursor position for the document's file.
func (app *Application) saveState() {
	if app.store == nil || app.doc == nil || app.doc.IsScratch() {
		return
	}
	line, col := app.doc.Session.CursorPosition()
	if err := app.store.Save(app.doc.Path, engine.Point{Line: line, Column: col}); err != nil {
		app.logger.WithComponent("state").Warn("saving cursor: %v", err)
	}
}

// Shutdown records the cursor position when the document has no unsaved
// changes, then closes the log. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		if app.doc != nil && !app.doc.IsModified() {
			app.saveState()
		}
		if app.logger != nil {
			app.logger.Info("shutdown")
		}
		if app.closeLog != nil {
			_ = app.closeLog()
		}
	})
}
