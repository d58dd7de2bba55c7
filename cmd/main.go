package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"runtime"
	"runtime/debug"
	"slices"

	"github.com/Akashdeep-Patra/carousel/internal/app"
	"github.com/Akashdeep-Patra/carousel/internal/common"
	"github.com/Akashdeep-Patra/carousel/internal/config"
	"github.com/Akashdeep-Patra/carousel/internal/deck"
	"github.com/Akashdeep-Patra/carousel/internal/state"
	"github.com/Akashdeep-Patra/carousel/internal/watcher"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags by GoReleaser / Taskfile.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// A TUI spends nearly all its time waiting on terminal input and timers,
	// so two OS threads are plenty. An explicit GOMAXPROCS is respected.
	if os.Getenv("GOMAXPROCS") == "" {
		runtime.GOMAXPROCS(min(runtime.NumCPU(), 2))
	}
	debug.SetMemoryLimit(50 * 1024 * 1024) // 50 MiB
}

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "carousel:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "carousel [deck]",
		Short: "Page through a deck of items in the terminal",
		Long: `carousel shows the items of a deck file (YAML, TOML or JSON) in a
horizontally scrolling track. Items page one viewport at a time, or one
slide of a fixed number of items at a time with --items-per-slide.

The deck file is watched and reloaded when it changes, and the position in
each deck is remembered between runs.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"carousel %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())

	f := rootCmd.Flags()
	f.StringP("deck", "d", "", "Deck file to show (overrides the config file)")
	f.IntP("items-per-slide", "n", 0, "Page by slides of this many items (0 pages by viewport)")
	f.Int("gap", 0, "Spacing between items in cells")
	f.Int("index", 0, "Starting item index")
	f.Bool("no-watch", false, "Do not reload the deck when it changes")
	f.Bool("debug", false, "Write a debug log to carousel-debug.log")

	return rootCmd
}

func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersion(cmd.OutOrStdout(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

func printVersion(w io.Writer, jsonOutput bool) error {
	info := map[string]string{
		"version": version,
		"commit":  commit,
		"date":    date,
		"go":      runtime.Version(),
		"os":      runtime.GOOS,
		"arch":    runtime.GOARCH,
	}
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}
	fmt.Fprintf(w, "carousel %s\n", version)
	fmt.Fprintf(w, "  commit:  %s\n", commit)
	fmt.Fprintf(w, "  built:   %s\n", date)
	fmt.Fprintf(w, "  go:      %s\n", runtime.Version())
	fmt.Fprintf(w, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}

// completions maps each supported shell to its script generator.
var completions = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       (*cobra.Command).GenBashCompletion,
	"zsh":        (*cobra.Command).GenZshCompletion,
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
	"fish": func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	},
}

func buildCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Print a shell completion script",
		Long: `Print a completion script for the given shell to stdout, e.g.

  source <(carousel completion bash)`,
		DisableFlagsInUseLine: true,
		ValidArgs:             slices.Sorted(maps.Keys(completions)),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completions[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cobra.Command, args []string, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("deck") {
		cfg.Deck, _ = f.GetString("deck")
	}
	if len(args) > 0 {
		cfg.Deck = args[0]
	}
	if f.Changed("items-per-slide") {
		cfg.ItemsPerSlide, _ = f.GetInt("items-per-slide")
	}
	if f.Changed("gap") {
		cfg.Gap, _ = f.GetInt("gap")
	}
	if f.Changed("index") {
		cfg.Index, _ = f.GetInt("index")
	}
}

// loadDeck reads the configured deck, or returns the built-in demo deck
// when none is configured.
func loadDeck(cfg *config.Config) (*deck.Deck, error) {
	if cfg.Deck == "" {
		return demoDeck(), nil
	}
	return deck.Load(cfg.Deck)
}

func demoDeck() *deck.Deck {
	d := deck.FromStrings(
		"Welcome",
		"Paging",
		"Slides",
		"Mouse",
		"Decks",
		"Reloading",
		"Positions",
		"Themes",
		"That's all",
	)
	d.Title = "carousel demo"
	bodies := []string{
		"Use ← and → (or h and l) to page through the items.",
		"Without --items-per-slide the track pages one viewport at a time.",
		"With --items-per-slide 3 items page in slides of three. Press : to jump.",
		"Click ‹ and › or a slide dot. The wheel pages too.",
		"Pass a YAML, TOML or JSON file with an items list to show your own.",
		"Deck files are watched; edits show up without restarting.",
		"The last position in every deck is remembered between runs.",
		"Set theme: light in ~/.config/carousel/config.yaml for a light theme.",
		"Press q to quit.",
	}
	for i := range d.Items {
		d.Items[i].Body = bodies[i]
	}
	return d
}

// setupLogging sends the standard logger to a file when debugging and
// discards it otherwise; the TUI owns the terminal.
func setupLogging(debugFlag bool) (io.Closer, error) {
	if !debugFlag && os.Getenv("CAROUSEL_DEBUG") == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile("carousel-debug.log", "carousel")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	debugFlag, _ := cmd.Flags().GetBool("debug")
	logFile, err := setupLogging(debugFlag)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, args, cfg)

	d, err := loadDeck(cfg)
	if err != nil {
		return fmt.Errorf("loading deck: %w", err)
	}

	// Position memory is best effort: a broken state db must not stop the app.
	var store app.PositionStore
	if cfg.RememberPosition && d.Path != "" {
		mgr, err := state.Open()
		if err != nil {
			log.Printf("main: state disabled: %v", err)
		} else {
			defer func() {
				if err := mgr.Close(); err != nil {
					log.Printf("main: close state: %v", err)
				}
			}()
			store = mgr
		}
	}

	model := app.New(cfg, d, store)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	noWatch, _ := cmd.Flags().GetBool("no-watch")
	if d.Path != "" && !noWatch {
		if watchCh, stop, watchErr := watcher.Watch(d.Path, cfg.WatchDebounce); watchErr == nil {
			defer stop()
			go func() {
				for ev := range watchCh {
					p.Send(common.DeckChangedMsg{Path: ev.Path})
				}
			}()
		} else {
			log.Printf("main: watch %s: %v", d.Path, watchErr)
		}
	}

	_, err = p.Run()
	return err
}
