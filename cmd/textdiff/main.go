package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	textdiff "github.com/honlnk/text-diff-viewer"
	"github.com/honlnk/text-diff-viewer/bubbletea"
	"github.com/honlnk/text-diff-viewer/chroma"
	"github.com/honlnk/text-diff-viewer/levenshtein"
	"github.com/honlnk/text-diff-viewer/lipgloss"
	"golang.org/x/sync/errgroup"
)

// ErrNoDifferences is returned when the two inputs compare equal.
var ErrNoDifferences = errors.New("no differences to display")

// Config holds the resolved command line options.
type Config struct {
	Path1     string
	Path2     string
	Options   textdiff.Options
	StatsOnly bool
}

// App encapsulates the application logic for testing.
type App struct {
	Config   Config
	Differ   textdiff.Differ
	Viewer   textdiff.Viewer
	ReadFile func(name string) ([]byte, error)
	Stdout   io.Writer
	Stderr   io.Writer
}

// Run loads both inputs, computes the diff, and hands the result to the
// viewer (or prints statistics when StatsOnly is set).
func (a *App) Run(ctx context.Context) error {
	var text1, text2 string
	var g errgroup.Group
	g.Go(func() error {
		data, err := a.ReadFile(a.Config.Path1)
		if err != nil {
			return fmt.Errorf("reading %s: %w", a.Config.Path1, err)
		}
		text1 = string(data)
		return nil
	})
	g.Go(func() error {
		data, err := a.ReadFile(a.Config.Path2)
		if err != nil {
			return fmt.Errorf("reading %s: %w", a.Config.Path2, err)
		}
		text2 = string(data)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	warnings := textdiff.ValidateContent("first input", text1)
	warnings = append(warnings, textdiff.ValidateContent("second input", text2)...)
	for _, w := range warnings {
		fmt.Fprintf(a.Stderr, "warning: %s\n", w.Error())
	}

	result, err := a.Differ.Compute(ctx, text1, text2, a.Config.Options)
	if err != nil {
		return err
	}

	if a.Config.StatsOnly {
		stats := result.Stats()
		fmt.Fprintf(a.Stdout, "similarity %.2f%%  +%d -%d ~%d  edit distance %d\n",
			stats.Similarity, stats.Additions, stats.Deletions, stats.Modifications, result.EditDistance)
		return nil
	}

	if len(result.Records) == 0 {
		return ErrNoDifferences
	}
	return a.Viewer.View(ctx, result)
}

// plainViewer writes the rendered diff to a writer instead of opening the
// interactive viewer.
type plainViewer struct {
	out       io.Writer
	theme     textdiff.Theme
	title     string
	language  string
	tokenizer textdiff.Tokenizer
}

func (v *plainViewer) View(_ context.Context, result *textdiff.Result) error {
	_, err := fmt.Fprintln(v.out, bubbletea.Render(result, v.theme, bubbletea.RenderOptions{
		Title:     v.title,
		Language:  v.language,
		Tokenizer: v.tokenizer,
	}))
	return err
}

func main() {
	precision := flag.String("precision", "character", "diff granularity: character, word, or line")
	timeout := flag.Duration("timeout", 5*time.Second, "computation timeout")
	ignoreCase := flag.Bool("ignore-case", false, "compare case-insensitively")
	ignoreWhitespace := flag.Bool("ignore-whitespace", false, "collapse whitespace runs before comparing")
	maxSpaceRun := flag.Int("max-space-run", 1, "longest space run kept when collapsing whitespace")
	plain := flag.Bool("plain", false, "print the diff instead of opening the interactive viewer")
	statsOnly := flag.Bool("stats", false, "print summary statistics only")
	themeName := flag.String("theme", "dark", "color theme: dark or light")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: textdiff [flags] <file1> <file2>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	path1, path2 := flag.Arg(0), flag.Arg(1)

	prec, err := textdiff.ParsePrecision(*precision)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := textdiff.DefaultOptions()
	opts.Precision = prec
	opts.Timeout = *timeout
	opts.IgnoreCase = *ignoreCase
	opts.IgnoreWhitespace = *ignoreWhitespace
	opts.MaxSpaceRun = *maxSpaceRun

	var theme textdiff.Theme
	switch *themeName {
	case "dark":
		theme = lipgloss.DarkTheme()
	case "light":
		theme = lipgloss.LightTheme()
	default:
		fmt.Fprintf(os.Stderr, "unknown theme %q\n", *themeName)
		os.Exit(1)
	}

	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	language := chroma.NewDetector().DetectFromPath(path1)
	title := filepath.Base(path1) + " / " + filepath.Base(path2)

	var viewer textdiff.Viewer
	if *plain {
		viewer = &plainViewer{
			out:       os.Stdout,
			theme:     theme,
			title:     title,
			language:  language,
			tokenizer: tokenizer,
		}
	} else {
		v := bubbletea.NewViewer(theme)
		v.SetTitle(title)
		v.SetSyntax(tokenizer, language)
		viewer = v
	}

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		Config: Config{
			Path1:     path1,
			Path2:     path2,
			Options:   opts,
			StatsOnly: *statsOnly,
		},
		Differ:   levenshtein.NewDiffer(),
		Viewer:   viewer,
		ReadFile: os.ReadFile,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
