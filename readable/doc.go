// Package readable implements the expanded, human-oriented textual
// surface.  Output is flat TOML-like text: context pairs under
// [config] with aligned equals signs, reference definitions under
// [references], and each data section as a box-drawn table under its
// full section name.
//
//	# ═══════════════════════════════════════════════════════════════
//	#                          CONFIGURATION
//	# ═══════════════════════════════════════════════════════════════
//
//	[config]
//	name    = demo
//	version = 1.0.0
//
//	[users]
//	┌────┬───────┬────────┐
//	│ id │ name  │ active │
//	├────┼───────┼────────┤
//	│  1 │ Alice │   ✓    │
//	└────┴───────┴────────┘
//
// Keys may be abbreviated or full on input; output always shows full
// keys unless configured otherwise.  Rows wider than the configured
// maximum are wrapped onto multiple physical lines, each holding a
// contiguous run of columns, with a trailing ↪ on every non-final
// line of a logical row.
package readable
