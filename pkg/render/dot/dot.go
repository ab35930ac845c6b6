package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/scout/pkg/widget"
)

// Options configures diagram generation.
type Options struct {
	// Geometry adds position and size to every label.
	Geometry bool
}

// ToDOT converts the tree rooted at root to Graphviz DOT source.
func ToDOT(root *widget.Widget, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	writeWidget(&buf, root, opts, 1)

	buf.WriteString("\n")
	root.Walk(func(w *widget.Widget) bool {
		for _, a := range w.Anchors() {
			label := fmt.Sprintf("%s→%s", a.Type, a.TargetType)
			if a.Margin != 0 {
				label += fmt.Sprintf(" %+d", a.Margin)
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", w.ID, a.Target.ID, label)
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

func writeWidget(buf *bytes.Buffer, w *widget.Widget, opts Options, depth int) {
	indent := strings.Repeat("  ", depth)
	if !w.IsContainer() {
		fmt.Fprintf(buf, "%s%q [%s];\n", indent, w.ID, strings.Join(fmtAttrs(w, opts), ", "))
		return
	}

	fmt.Fprintf(buf, "%ssubgraph %q {\n", indent, "cluster_"+w.ID)
	fmt.Fprintf(buf, "%s  style=\"rounded,dashed\";\n", indent)
	fmt.Fprintf(buf, "%s  label=%q;\n", indent, fmtLabel(w, opts))
	if w.HandlesOwnConstraints {
		fmt.Fprintf(buf, "%s  bgcolor=lightgrey;\n", indent)
	}
	// the container itself needs a node for anchors to point at
	fmt.Fprintf(buf, "%s  %q [shape=point, label=\"\"];\n", indent, w.ID)
	for _, c := range w.Children() {
		writeWidget(buf, c, opts, depth+1)
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

func fmtLabel(w *widget.Widget, opts Options) string {
	if !opts.Geometry {
		return w.ID
	}
	return w.ID + "\n" + w.Rect().String()
}

func fmtAttrs(w *widget.Widget, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(w, opts))}
	if w.IsGuideline() {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// =============================================================================
// Rendering
// =============================================================================

// RenderSVG renders DOT source to SVG.
func RenderSVG(dot string) ([]byte, error) {
	out, err := render(dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders DOT source to PNG.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag to a zero-origin viewBox with
// matching pixel size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
