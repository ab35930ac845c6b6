// Package document reads and writes widget trees as JSON or TOML.
//
// A document holds a single root widget. Children nest under it and anchors
// refer to their targets by ID:
//
//	{
//	  "root": {
//	    "id": "form", "width": 400, "height": 300,
//	    "children": [
//	      {"id": "name", "x": 10, "y": 10, "width": 120, "height": 24},
//	      {"id": "email", "x": 10, "y": 44, "width": 120, "height": 24,
//	       "anchors": [{"type": "top", "target": "name", "target_type": "bottom", "margin": 10}]}
//	    ]
//	  }
//	}
//
// The TOML form uses the same keys:
//
//	[root]
//	id = "form"
//	width = 400
//	height = 300
//
//	[[root.children]]
//	id = "name"
//	x = 10
//
// Widgets without an ID are assigned a random UUID on load, so every widget
// of a decoded tree can be addressed from the CLI and in DOT output.
//
// All decoding failures carry [errors.ErrCodeInvalidDocument].
package document
