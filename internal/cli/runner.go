package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/reminders/internal/apperr"
	"github.com/idilsaglam/reminders/internal/config"
	"github.com/idilsaglam/reminders/internal/logging"
	"github.com/idilsaglam/reminders/internal/store"
	"github.com/idilsaglam/reminders/internal/ui"
)

// Options wire the runner to its surroundings. Zero values mean the process
// stdout/stderr.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
}

// usageError marks errors that should exit with code 2 and print usage.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usage(err error) error { return usageError{err: err} }

// app is the state shared by every subcommand for one invocation.
type app struct {
	opt Options

	configPath string
	theme      string
	color      string
	ephemeral  bool
	verbose    bool

	cfg        *config.Config
	log        *slog.Logger
	store      store.NoteStore
	closeStore func() error
	closeLog   func() error
}

// Run executes one command line and returns an exit code
// (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	a := &app{opt: opt}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(opt.Stdout)
	root.SetErr(opt.Stderr)

	cmd, err := root.ExecuteC()
	if cerr := a.teardown(); err == nil {
		err = cerr
	}
	if err == nil {
		return 0
	}

	ui.Fail(opt.Stderr, err.Error())
	if isUsage(err) {
		if cmd == nil {
			cmd = root
		}
		fmt.Fprintln(opt.Stderr)
		fmt.Fprint(opt.Stderr, cmd.UsageString())
		return 2
	}
	return 1
}

func isUsage(err error) bool {
	var ue usageError
	return errors.As(err, &ue) ||
		errors.Is(err, apperr.ErrUnknownKey) ||
		errors.Is(err, apperr.ErrUnknownCategory) ||
		errors.Is(err, apperr.ErrInvalidText)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reminders",
		Short: "Categorized reminder notes in your terminal",
		Long: `reminders keeps short notes such as lock codes and ID numbers,
grouped into Personal, Work and Family tabs.

Run without arguments for the interactive view.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usage(fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath()))
			}
			return nil
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usage(err) })

	f := root.PersistentFlags()
	f.StringVarP(&a.configPath, "config", "c", "", "path to config file (default: search ., $XDG_CONFIG_HOME/reminders)")
	f.StringVar(&a.theme, "theme", "", "color theme: classic, neon or mono")
	f.StringVar(&a.color, "color", ui.ColorAuto, "colorize plain output: auto, always or never")
	f.BoolVar(&a.ephemeral, "ephemeral", false, "keep notes in memory only for this run")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.tuiCmd(),
		a.lsCmd(),
		a.getCmd(),
		a.setCmd(),
		a.clearCmd(),
		a.exportCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.theme != "" {
		cfg.Theme = a.theme
	}
	if a.ephemeral {
		cfg.Store.Driver = config.DriverMemory
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return usage(err)
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)
	if err := ui.SetColorMode(a.color, a.opt.Stdout); err != nil {
		return usage(err)
	}

	if a.interactive(cmd) {
		a.log, a.closeLog, err = logging.OpenFile(cfg.Log.File, cfg.Log.SlogLevel())
		if err != nil {
			return err
		}
	} else {
		level := slog.LevelWarn
		if a.verbose {
			level = slog.LevelDebug
		}
		a.log = logging.New(a.opt.Stderr, level)
		a.closeLog = func() error { return nil }
	}

	a.store, a.closeStore, err = openStore(cfg.Store)
	if err != nil {
		return err
	}
	a.log.Debug("store opened", slog.String("driver", cfg.Store.Driver), slog.String("path", cfg.Store.Path))
	return nil
}

// teardown runs whether or not the command succeeded.
func (a *app) teardown() error {
	var errs []error
	if a.closeStore != nil {
		errs = append(errs, a.closeStore())
		a.closeStore = nil
	}
	if a.closeLog != nil {
		errs = append(errs, a.closeLog())
		a.closeLog = nil
	}
	return errors.Join(errs...)
}

func (a *app) interactive(cmd *cobra.Command) bool {
	return cmd == cmd.Root() || cmd.Name() == "tui"
}
