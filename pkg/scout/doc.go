// Package scout is the entry point of the layout inference engine.
//
// An [Engine] bundles the arrange operations of package arrange, table
// group inference from packages group and table, and recursive constraint
// synthesis behind one configured value:
//
//	engine := scout.New(config.Default(), scout.WithLogger(logger))
//	if err := engine.Align(arrange.AlignLeft, selection, true); err != nil {
//	    return err
//	}
//	group, err := engine.InferTableGroup(form)
//
// The engine is synchronous and keeps no state between calls beyond its
// configuration. Callers must not edit the widget tree concurrently with a
// call.
//
// # Constraint synthesis
//
// [Engine.InferConstraints] walks a widget tree bottom-up and hands each
// container and its children to a [Synthesizer]. The default
// [NeighborSynthesizer] anchors every unconstrained child to its nearest
// neighbour above and to the left, keeping the current gaps as margins.
package scout
