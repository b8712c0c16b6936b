package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Makepad-fr/faraway/internal/config"
	"github.com/Makepad-fr/faraway/internal/logging"
	"github.com/Makepad-fr/faraway/internal/menu"
	"github.com/Makepad-fr/faraway/internal/model"
	"github.com/Makepad-fr/faraway/internal/packing"
	"github.com/Makepad-fr/faraway/internal/tui"
	"github.com/Makepad-fr/faraway/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	ConfigPath string
	Theme      string // overrides config when set
	Group      bool   // list grouped by pending/packed

	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	cmd, a := "pack", args
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0
	case "pack", "list", "menu":
	default:
		ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
		fmt.Fprintln(opt.Stderr)
		PrintHelp(opt.Stderr)
		return 2
	}

	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	if opt.Theme != "" {
		if !ui.IsTheme(opt.Theme) {
			ui.Fail(opt.Stderr, "unknown theme: "+opt.Theme)
			return 2
		}
		cfg.Theme = opt.Theme
	}
	ui.SetTheme(cfg.Theme)

	switch cmd {
	case "menu":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: faraway menu")
			return 2
		}
		fmt.Fprintln(opt.Stdout, menu.Render(menu.Default(), cfg.Hours(), opt.Now()))
		return 0
	case "list":
		return doList(cfg, a, opt)
	}
	if len(a) != 0 {
		ui.Fail(opt.Stderr, "usage: faraway pack")
		return 2
	}
	return doPack(cfg, opt)
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `faraway - packing list and pizza menu

Usage:
  faraway [flags] <subcommand> [args]

Flags:
  -config <path>     YAML config file (default faraway.yaml)
  -theme <name>      classic, neon or mono
  -group             group list output by pending/packed

Subcommands:
  pack               Interactive packing list (default)
  list [-sort <o>]   Print the packing list; order is input, description or packed
  menu               Print the pizza menu
  help               Show this help

Keys (pack):
  space pack/unpack   a add   d remove   s sort   c clear   / filter   q quit

Examples:
  faraway
  faraway -group list -sort packed
  FARAWAY_THEME=neon faraway menu
`)
}

// -------------- subcommand impls ----------------

func doPack(cfg config.Config, opt Options) int {
	store, err := packing.NewStore(cfg.SeedItems)
	if err != nil {
		ui.Fail(opt.Stderr, "seed: "+err.Error())
		return 1
	}
	order, err := packing.ParseSortOrder(cfg.SortOrder)
	if err != nil {
		ui.Fail(opt.Stderr, "config: "+err.Error())
		return 1
	}
	logger, err := logging.New(cfg.DebugLog)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	defer logger.Close()
	logger.Printf("start with %d items", store.Len())

	err = tui.Run(store, tui.Options{
		DefaultQuantity: cfg.DefaultQuantity,
		MaxQuantity:     cfg.MaxQuantity,
		SortOrder:       order,
		Logger:          logger,
	})
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	return 0
}

func doList(cfg config.Config, args []string, opt Options) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(opt.Stderr)
	sortFlag := fs.String("sort", cfg.SortOrder, "input, description or packed")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	order, err := packing.ParseSortOrder(*sortFlag)
	if err != nil {
		ui.Fail(opt.Stderr, "list: "+err.Error())
		return 2
	}
	store, err := packing.NewStore(cfg.SeedItems)
	if err != nil {
		ui.Fail(opt.Stderr, "seed: "+err.Error())
		return 1
	}

	th := ui.Current()
	items := store.Sorted(order)
	st := packing.ComputeStats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		th.Title.Render("🌴 Far Away 🌴"),
		th.Success.Render(th.BoxChecked), st.Packed,
		th.Pending.Render(th.BoxUnchecked), st.Total-st.Packed,
		th.Accent.Render("Total"), st.Total,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, th.Muted.Render(ui.ProgressBar(st.Packed, st.Total, 28)))
	lines = append(lines, "")
	if opt.Group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, th.Muted.Render(order.Label()))
	lines = append(lines, th.Accent.Render(st.Message()))
	ui.Panel(opt.Stdout, lines)
	return 0
}

// -------------- rendering helpers --------------

func flatLines(items []model.Item) []string {
	th := ui.Current()
	if len(items) == 0 {
		return []string{th.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		box := th.Muted.Render(th.BoxUnchecked)
		text := fmt.Sprintf("%d %s", it.Quantity, it.Description)
		if r := []rune(text); len(r) > 80 {
			text = string(r[:77]) + "..."
		}
		if it.Packed {
			box = th.Success.Render(th.BoxChecked)
			text = th.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", th.Muted.Render(fmt.Sprintf("%3d.", it.ID)), box, text))
	}
	return out
}

func groupLines(items []model.Item) []string {
	th := ui.Current()
	var pend, packed []model.Item
	for _, it := range items {
		if it.Packed {
			packed = append(packed, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, th.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, th.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, th.Accent.Render("Packed"))
	if len(packed) == 0 {
		lines = append(lines, th.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(packed)...)
	}
	return lines
}
