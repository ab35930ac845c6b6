// Package pkg provides the core libraries for Scout layout inference.
//
// # Overview
//
// Scout works on trees of rectangular widgets inside a constraint-based UI
// designer. It arranges selected widgets, derives anchor constraints that
// preserve a layout, and detects groups of widgets that read as a table.
// The pkg directory is organized into three main areas:
//
//  1. Model - geometry, widgets and the document format
//  2. Engine - arrange operations, table analysis and group search
//  3. Support - configuration, errors, engine hooks and DOT rendering
//
// # Architecture
//
// The typical data flow through Scout:
//
//	JSON/TOML document
//	         ↓
//	    [document] package (parse + resolve anchors)
//	         ↓
//	    [widget] tree
//	         ↓
//	    [scout] engine ([arrange], [group], [table])
//	         ↓
//	    [document] / [render/dot] output
//
// # Quick Start
//
// Infer constraints for a document and write it back:
//
//	import (
//	    "github.com/matzehuels/scout/pkg/config"
//	    "github.com/matzehuels/scout/pkg/document"
//	    "github.com/matzehuels/scout/pkg/scout"
//	)
//
//	root, _ := document.ReadFile("form.json")
//	engine := scout.New(config.Default())
//	_ = engine.InferConstraints(root)
//	_ = document.WriteFile(root, "form.constrained.json")
//
// # Main Packages
//
// ## Model
//
// [geom] - Integer rectangles, edge directions and the edge distance used to
// pick neighbours.
//
// [widget] - Widgets, containers and guidelines with their anchors, sizing
// behaviours and biases.
//
// [document] - JSON and TOML serialization of widget trees. Anchors refer to
// targets by ID and are resolved after the whole tree is built.
//
// ## Engine
//
// [arrange] - The 23 align, distribute, pack, expand, center, connect and
// chain operations, optionally creating anchors.
//
// [table] - Bands rectangles into rows and columns and scores the dominant
// alignment of each column.
//
// [group] - Enumerates candidate regions of a container and picks the most
// table-like group of widgets.
//
// [scout] - The engine facade: align, wrap, constraint inference and table
// group inference with a shared configuration.
//
// ## Support
//
// [config] - Engine tunables, loaded from TOML.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Engine event hooks and a logging implementation.
//
// [render/dot] - Graphviz rendering of the widget tree and its anchors.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/group/...              # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/scout/pkg/geom
// [widget]: https://pkg.go.dev/github.com/matzehuels/scout/pkg/widget
// [document]: https://pkg.go.dev/github.com/matzehuels/scout/pkg/document
// [arrange]: https://pkg.go.dev/github.com/matzehuels/scout/pkg/arrange
// [table]: https://pkg.go.dev/github.com/matzehuels/scout/pkg/table
// [group]: https://pkg.go.dev/github.com/matzehuels/scout/pkg/group
// [scout]: https://pkg.go.dev/github.com/matzehuels/scout/pkg/scout
// [config]: https://pkg.go.dev/github.com/matzehuels/scout/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/scout/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/scout/pkg/observability
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/scout/pkg/render/dot
package pkg
