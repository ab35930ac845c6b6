// Package dot renders widget trees and their anchor constraints as
// Graphviz diagrams.
//
// Every container becomes a cluster holding its children; every anchor
// becomes an edge from the constrained widget to its target, labelled with
// both anchor types and the margin:
//
//	src := dot.ToDOT(root, dot.Options{Geometry: true})
//	svg, err := dot.RenderSVG(src)
//
// Rendering uses [github.com/goccy/go-graphviz], which embeds Graphviz, so
// no external tools are needed.
package dot
