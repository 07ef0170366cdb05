// Package compact implements the token-efficient textual surface.
//
// Grammar, line-oriented:
//
//	nm|dx            root-level context pair (abbreviated key)
//	#:A|value        reference definition
//	#u(id|nm|em)     section header with schema
//	1|Alice|^A       positional row for the open section
//
// Special values: + true, - false, ~ null, ^K reference, *a,b,c array.
// Lines starting with '#' that match no sigil are comments, never
// errors.
package compact
