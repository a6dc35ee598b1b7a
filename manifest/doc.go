// Package manifest builds file factories from declarative YAML definitions.
//
// A manifest names a set of factories, each with an anchor reference (see
// anchor.Parse), a kind, an optional extension, and kind-specific defaults:
//
//	factories:
//	  templates:
//	    anchor: /srv/app/templates
//	    extension: txt
//	    kind: text
//	    encoding: utf-8
//	    on_error: strict
//	  saves:
//	    anchor: xdg-data:myapp
//	    extension: sav
//	    kind: opener
//
// Load applies defaults and validates every definition, accumulating all
// problems rather than stopping at the first. Build then constructs the
// factories into a Set, again accumulating per-definition failures.
package manifest
