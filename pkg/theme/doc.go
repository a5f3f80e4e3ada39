// Package theme resolves per-visual-state colors and borders for control
// nodes.
//
// A Sheet maps node classes to StateStyles. StateStyles implements Resolver:
// each property is looked up for the requested VisualState and falls back to
// StateNormal when the state does not override it. Sheets load from YAML or
// TOML:
//
//	classes:
//	  button:
//	    normal:
//	      background: "#eeeeee"
//	      foreground: black
//	      border: {width: 1, color: gray}
//	    hovered:
//	      background: lightsteelblue
//	    disabled:
//	      foreground: darkgray
package theme
