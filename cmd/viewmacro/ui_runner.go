package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"viewmacro/internal/driver"
	"viewmacro/internal/source"
	"viewmacro/internal/ui"
)

type expandOutcome struct {
	fs      *source.FileSet
	results []*driver.FileResult
	err     error
}

// runExpandWithUI runs a directory expansion on a worker goroutine while a
// Bubble Tea program renders its progress events.
func runExpandWithUI(ctx context.Context, dir string, opts driver.Options) (*source.FileSet, []*driver.FileResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return driver.ExpandDir(ctx, dir, opts)
	}

	sink := driver.NewChannelSink(len(files) * 2)
	opts.Sink = sink

	outcome := make(chan expandOutcome, 1)
	go func() {
		fs, results, err := driver.ExpandDir(ctx, dir, opts)
		sink.Close()
		outcome <- expandOutcome{fs: fs, results: results, err: err}
	}()

	model := ui.NewProgressModel(fmt.Sprintf("expanding %s", dir), files, sink.C)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		// Drain the worker even when the UI failed so the run still finishes.
		res := <-outcome
		if res.err != nil {
			return nil, nil, res.err
		}
		return res.fs, res.results, err
	}

	res := <-outcome
	return res.fs, res.results, res.err
}
