package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/reminders/internal/apperr"
	"github.com/idilsaglam/reminders/internal/binding"
	"github.com/idilsaglam/reminders/internal/model"
	"github.com/idilsaglam/reminders/internal/tui"
	"github.com/idilsaglam/reminders/internal/ui"
)

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usage(err)
		}
		return nil
	}
}

func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return usage(err)
		}
		return nil
	}
}

func knownKey(key string) error {
	if !model.KnownKey(key) {
		return fmt.Errorf("%w: %q (run `reminders ls` to see keys)", apperr.ErrUnknownKey, key)
	}
	return nil
}

func (a *app) runTUI(*cobra.Command, []string) error {
	return tui.Run(a.store, tui.Options{Theme: a.cfg.Theme, Logger: a.log})
}

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive tabbed view (default)",
		Args:  exactArgs(0),
		RunE:  a.runTUI,
	}
}

func (a *app) lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [category]",
		Short: "List reminders, optionally for one category",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usage(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := model.Categories()
			if len(args) == 1 {
				c, ok := model.Lookup(args[0])
				if !ok {
					return fmt.Errorf("%w: %q", apperr.ErrUnknownCategory, args[0])
				}
				cats = []model.Category{c}
			}
			lists, err := a.loadAll(cats)
			if err != nil {
				return err
			}
			ui.Panel(a.opt.Stdout, listLines(lists))
			return nil
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one reminder (empty if unset)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := knownKey(args[0]); err != nil {
				return err
			}
			v, err := a.store.Get(args[0], "")
			if err != nil {
				return err
			}
			fmt.Fprintln(a.opt.Stdout, v)
			return nil
		},
	}
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <text...>",
		Short: "Save a reminder",
		Example: `  reminders set "Bike Lock" 4-2-7
  reminders set "Wifi Password" correct horse battery staple`,
		Args: minArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, text := args[0], strings.Join(args[1:], " ")
			if err := knownKey(key); err != nil {
				return err
			}
			if err := a.store.Set(key, text); err != nil {
				return err
			}
			a.log.Debug("reminder saved", slog.String("key", key))
			ui.OK(a.opt.Stdout, "saved "+key)
			return nil
		},
	}
}

func (a *app) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <key>",
		Short: "Remove a reminder",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if err := knownKey(key); err != nil {
				return err
			}
			if err := a.store.Remove(key); err != nil {
				return err
			}
			a.log.Debug("reminder cleared", slog.String("key", key))
			ui.OK(a.opt.Stdout, "cleared "+key)
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write all reminders as YAML (category -> key -> text)",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := a.loadAll(model.Categories())
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(a.opt.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(exportDoc(lists)); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			return enc.Close()
		},
	}
}

func (a *app) loadAll(cats []model.Category) ([]*binding.List, error) {
	out := make([]*binding.List, 0, len(cats))
	for _, c := range cats {
		l := binding.New(c, a.store, a.log)
		if err := l.Load(); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// exportDoc builds a mapping node so categories and keys keep catalog order.
func exportDoc(lists []*binding.List) *yaml.Node {
	str := func(s string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	}
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, l := range lists {
		entries := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range l.Entries() {
			entries.Content = append(entries.Content, str(e.Key), str(e.Text))
		}
		doc.Content = append(doc.Content, str(l.Category().Name), entries)
	}
	return doc
}

// -------------- rendering helpers --------------

func listLines(lists []*binding.List) []string {
	t := ui.Current()
	set, total := 0, 0
	for _, l := range lists {
		for _, e := range l.Entries() {
			total++
			if e.IsSet() {
				set++
			}
		}
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("%s   %s %d  %s %d",
		ui.C(t.Title, "Reminders"),
		ui.C(t.Success, t.SymSet), set,
		ui.C(t.Pending, t.SymUnset), total-set,
	))
	lines = append(lines, ui.C(t.Muted, ui.Meter(set, total, 24)))

	for _, l := range lists {
		c := l.Category()
		lines = append(lines, "")
		lines = append(lines, ui.C(t.Accent, c.Icon.Render(t.ASCII)+" "+c.Name))
		for _, e := range l.Entries() {
			text := e.Text
			if r := []rune(text); len(r) > 60 {
				text = string(r[:57]) + "..."
			}
			if !e.IsSet() {
				text = ui.C(t.Muted, "(not set)")
			}
			lines = append(lines, fmt.Sprintf("  %s %-16s %s", e.Icon.Render(t.ASCII), e.Key, text))
		}
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Dim(), "Tip: edit with `reminders set \"Bike Lock\" 4-2-7`"))
	return lines
}
