// Package clicycle renders self-spacing CLI output components.
//
// # Overview
//
// A Clicycle instance exposes one method per component kind: headers,
// sections, status lines, tables, code blocks, summaries, progress
// indicators, and selection prompts. Callers never print blank lines
// themselves: the render stream tracks the kind of the last component
// it emitted and consults the theme's spacing rule table to decide how
// many blank lines separate it from the next one.
//
// Basic usage:
//
//	cli, err := clicycle.New()
//	if err != nil {
//		// malformed theme configuration
//	}
//	cli.Header("My App", "Version 1.0")
//	cli.Info("This is an info message")
//	cli.Success("Operation completed!")
//
// # Components
//
//   - Header: page titles with an optional subtitle
//   - Section: titled rule dividers
//   - Info/Success/Warning/Error/Debug: status lines with themed icons
//   - Table: data tables with one-shot column sizing
//   - Code: syntax-highlighted source blocks
//   - Summary: aligned label/value pairs
//   - Progress: an in-place updating progress line
//   - SelectFromList / InteractiveSelect: input prompts
//
// # Theming
//
// Icons, typography, layout widths, and the spacing rules all live in a
// Theme. Themes are immutable values: build one with theme defaults,
// overlay a YAML file, and pass it in with WithTheme.
//
// # Concurrency
//
// A Clicycle and its render stream are single-threaded: the spacing
// decision is inherently sequential. Concurrent writers must each own
// an independent instance.
package clicycle
