// Package widget is the geometry model the layout engine reads and writes.
//
// A [Widget] is a rectangle in its parent's coordinate space with a set of
// anchor connections, a dimension behaviour per axis and a baseline offset.
// Containers are widgets created with [NewContainer]; they own an ordered
// list of children and may opt their subtree out of constraint inference
// with HandlesOwnConstraints.
//
// Anchors form a relation, not an ownership edge: connecting a widget to
// another never changes either widget's place in the tree.
//
//	root := widget.NewContainer("root", 0, 0, 400, 300)
//	a := widget.New("a", 10, 10, 80, 20)
//	b := widget.New("b", 10, 40, 80, 20)
//	root.AddChild(a)
//	root.AddChild(b)
//	b.Connect(widget.Top, a, widget.Bottom, 10)
//
// Guidelines are zero-thickness helper lines. They take part in collision
// checks but never in bounding boxes or group inference; [Widget.Bounds]
// stretches them across the parent so neighbour searches can hit them.
package widget
