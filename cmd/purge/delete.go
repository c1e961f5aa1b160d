package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jamesainslie/purge/cmd/purge/tui"
	"github.com/jamesainslie/purge/pkg/purge/config"
	"github.com/jamesainslie/purge/pkg/purge/engine"
	"github.com/jamesainslie/purge/pkg/purge/manifest"
	"github.com/jamesainslie/purge/pkg/purge/output"
	"github.com/jamesainslie/purge/pkg/purge/preview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runDelete is the main command handler: it resolves the target,
// gates on confirmation, runs either a real deletion or a dry-run
// preview, records the run in the manifest, and prints the summary.
func runDelete(_ *cobra.Command, args []string) error {
	expandedPath, err := config.ExpandPath(args[0])
	if err != nil {
		return fmt.Errorf("failed to expand path: %w", err)
	}

	absPath, err := filepath.Abs(expandedPath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	dryRun := viper.GetBool("dry_run")

	// Resolve the formatter up front so a bad --output fails before
	// anything is deleted.
	outFormat := viper.GetString("output")
	if outFormat == "" {
		outFormat = config.DefaultOutput
	}
	formatter, err := output.Get(outFormat)
	if err != nil {
		return fmt.Errorf("unknown output format %q: available formats are %v", outFormat, output.Available())
	}

	if !dryRun && !viper.GetBool("yes") && viper.GetBool("confirm") {
		ok, err := promptConfirm(absPath)
		if err != nil {
			return err
		}
		if !ok {
			printInfo("Aborted.")
			return nil
		}
	}

	showProgress := outFormat == "pretty" &&
		!getQuiet() &&
		!viper.GetBool("no_progress") &&
		isTerminal(os.Stdout)

	startTime := time.Now()

	var result *output.Result
	if dryRun {
		result, err = runPreview(absPath, showProgress)
	} else {
		result, err = runEngine(absPath, showProgress)
	}
	if err != nil {
		return err
	}
	result.Summary.Duration = time.Since(startTime)

	logRun(result)

	// Quiet mode suppresses the human-readable summary; explicit
	// machine formats still print.
	if getQuiet() && outFormat == "pretty" {
		return nil
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, result); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(buf.String())

	return nil
}

// runEngine performs the real deletion, optionally behind the live
// progress view.
func runEngine(root string, showProgress bool) (*output.Result, error) {
	collector := &eventCollector{}
	eng := engine.New(engine.Options{
		Verbose: getVerbose(),
		OnEvent: collector.handle,
	})

	var runErr error
	if showProgress {
		p := tea.NewProgram(tui.NewModel(tui.ModeDelete, root))
		collector.notify = func(msg tui.ProgressMsg) { p.Send(msg) }

		done := make(chan error, 1)
		go func() {
			err := eng.Delete(root)
			done <- err
			p.Send(tui.CompleteMsg{Err: err})
		}()

		final, err := p.Run()
		if err != nil {
			return nil, fmt.Errorf("progress view failed: %w", err)
		}

		// Deletion cannot be cancelled once started. If the user
		// detached the view, wait for the run to finish.
		model := final.(tui.Model)
		if model.Interrupted() && !model.Done() {
			printInfo("Progress view detached; deletion continuing...")
		}
		runErr = <-done
	} else {
		runErr = eng.Delete(root)
	}

	if runErr != nil {
		return nil, runErr
	}

	snap := eng.Stats().Snapshot()
	return &output.Result{
		Root: root,
		Summary: output.Summary{
			FilesDeleted: snap.FilesDeleted,
			DirsDeleted:  snap.DirsDeleted,
			Errors:       snap.Errors,
			BytesFreed:   snap.BytesFreed,
		},
		Warnings: collector.warnings(),
	}, nil
}

// runPreview performs a dry-run tally, optionally behind the live
// progress view. Interrupting a preview cancels the walk; the partial
// tally is still reported.
func runPreview(root string, showProgress bool) (*output.Result, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var res *preview.Result

	if showProgress {
		p := tea.NewProgram(tui.NewModel(tui.ModePreview, root))
		scanner := preview.New(preview.Options{
			Root: root,
			OnProgress: func(pr preview.Progress) {
				p.Send(tui.ProgressMsg{
					Files:       pr.Files,
					Dirs:        pr.Dirs,
					Errors:      pr.Errors,
					Bytes:       pr.Bytes,
					CurrentPath: pr.CurrentPath,
				})
			},
		})

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		type scanResult struct {
			res *preview.Result
			err error
		}
		done := make(chan scanResult, 1)
		go func() {
			r, err := scanner.Scan(ctx)
			done <- scanResult{r, err}
			p.Send(tui.CompleteMsg{Err: err})
		}()

		final, err := p.Run()
		if err != nil {
			return nil, fmt.Errorf("progress view failed: %w", err)
		}
		if final.(tui.Model).Interrupted() {
			cancel()
		}

		out := <-done
		if out.err != nil {
			return nil, out.err
		}
		res = out.res
	} else {
		scanner := preview.New(preview.Options{Root: root})
		var err error
		res, err = scanner.Scan(ctx)
		if err != nil {
			return nil, err
		}
	}

	return &output.Result{
		Root:   root,
		DryRun: true,
		Summary: output.Summary{
			FilesDeleted: res.Files,
			DirsDeleted:  res.Dirs,
			Errors:       res.Errors,
			BytesFreed:   res.Bytes,
		},
	}, nil
}

// logRun records the run in the manifest. Manifest failures never fail
// the run itself.
func logRun(result *output.Result) {
	cfg, err := config.Load()
	if err != nil || !cfg.Manifest.Enabled {
		return
	}

	m, err := manifest.New(cfg.Manifest.Path)
	if err != nil {
		printVerbose("Manifest disabled: %v", err)
		return
	}
	if err := m.EnsureDir(); err != nil {
		printVerbose("Failed to create manifest directory: %v", err)
		return
	}

	summary := manifest.Summary{
		FilesDeleted: result.Summary.FilesDeleted,
		DirsDeleted:  result.Summary.DirsDeleted,
		Errors:       result.Summary.Errors,
		BytesFreed:   result.Summary.BytesFreed,
		Duration:     result.Summary.Duration,
	}

	if result.DryRun {
		_, err = m.LogPreview(result.Root, summary)
	} else {
		_, err = m.LogDelete(result.Root, summary)
	}
	if err != nil {
		printVerbose("Failed to record run in manifest: %v", err)
	}
}

// maxWarnings caps the number of per-entry failures echoed in the
// summary; the rest are summarized as a count.
const maxWarnings = 10

// eventCollector folds engine events into progress snapshots and a
// bounded warning list.
type eventCollector struct {
	files  atomic.Int64
	dirs   atomic.Int64
	errs   atomic.Int64
	bytes  atomic.Int64
	path   atomic.Value
	notify func(tui.ProgressMsg)

	// lastNotify throttles progress snapshots.
	lastNotify atomic.Int64

	mu      sync.Mutex
	warns   []string
	dropped int
}

// handle is the engine event sink. It runs on the traversal goroutine.
func (c *eventCollector) handle(ev engine.Event) {
	switch ev.Kind {
	case engine.EventFileDeleted:
		c.files.Add(1)
		c.bytes.Add(ev.Size)
	case engine.EventDirDeleted:
		c.dirs.Add(1)
	case engine.EventError:
		c.errs.Add(1)
		c.mu.Lock()
		if len(c.warns) < maxWarnings {
			c.warns = append(c.warns, fmt.Sprintf("%s: %v", ev.Path, ev.Err))
		} else {
			c.dropped++
		}
		c.mu.Unlock()
	}

	c.path.Store(ev.Path)
	c.maybeNotify()
}

// maybeNotify sends a throttled progress snapshot to the view.
func (c *eventCollector) maybeNotify() {
	if c.notify == nil {
		return
	}

	now := time.Now().UnixMilli()
	last := c.lastNotify.Load()
	if now-last < 50 {
		return
	}
	c.lastNotify.Store(now)

	currentPath, _ := c.path.Load().(string)
	c.notify(tui.ProgressMsg{
		Files:       c.files.Load(),
		Dirs:        c.dirs.Load(),
		Errors:      c.errs.Load(),
		Bytes:       c.bytes.Load(),
		CurrentPath: currentPath,
	})
}

// warnings returns the collected warning lines, capped with a summary
// of anything over the limit.
func (c *eventCollector) warnings() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	warns := c.warns
	if c.dropped > 0 {
		warns = append(warns, fmt.Sprintf("... and %d more errors", c.dropped))
	}
	return warns
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
