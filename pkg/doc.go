// Package pkg provides the core libraries for Usher guided tours.
//
// # Overview
//
// Usher highlights one region of a running terminal application at a time and
// walks the user through it step by step. The pkg directory is organized into
// five main areas:
//
//  1. [tour] - Tour state machine and placement engine (framework-agnostic)
//  2. [teatour] - The bubbletea/lipgloss host adapter
//  3. [content] - TOML tour definitions
//  4. [progress] - Per-user tour outcome storage (memory, file, redis)
//  5. [observability] - Analytics hooks with no-op defaults
//
// # Architecture
//
// The typical flow of a tour:
//
//	Tour definition (code or TOML via [content])
//	         ↓
//	    [tour] package (sequencing, placement, epochs)
//	         ↓
//	    [teatour] package (compositing, input, measurement)
//	         ↓
//	    [progress] package (record the outcome)
//
// The [tour] package knows nothing about terminals: it talks to a host
// through the [tour.Host] interface and computes placement in abstract
// viewport units. The [teatour] package binds it to bubbletea; other UI
// stacks can implement the same interface.
//
// # Quick Start
//
// Run a tour over a bubbletea model:
//
//	import (
//	    "github.com/usherkit/usher/pkg/teatour"
//	    "github.com/usherkit/usher/pkg/tour"
//	)
//
//	// 1. Register highlightable regions during layout
//	reg := teatour.NewRegistry()
//	reg.Put("sidebar", 0, 0, 24, 23)
//
//	// 2. Wrap the application model and attach a controller
//	m := teatour.New(app, reg)
//	c, err := tour.New("onboarding", steps, tour.Config{}, tour.Callbacks{}, m)
//	if err != nil {
//	    return err
//	}
//	m.Attach(c)
//
//	// 3. Run; the tour starts when the app emits teatour.StartTourMsg
//	_, err = tea.NewProgram(m, tea.WithMouseCellMotion()).Run()
//
// # Error Handling
//
// Libraries return structured errors from [errors] with stable codes, so
// callers can branch on [errors.GetCode] without matching message text.
package pkg
