// Package render draws a directory subtree as text.
//
// Two visual forms are supported:
//
//	world            world
//	    europe       ├── europe
//	        france   │   └── france
//	    usa          └── usa
//
// The flat form indents every entry by four spaces per level. The tree form
// joins siblings with box-drawing connectors and keeps a vertical guide open
// below every ancestor that still has siblings to come.
//
// Renderer is the entry point. It validates the root, writes the root name
// exactly as given and then drives a walker, feeding every visited entry to a
// FlatRenderer or a TreeRenderer. Output is byte-exact unless a colour Styler
// is installed.
package render
