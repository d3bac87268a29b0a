// Package token decides how string scalars are written.
//
// [NeedsQuote] reports whether a string must be double quoted so that a
// reader resolving plain scalars with ir.FromPlain gets the string back;
// [Quote] produces the double quoted form.
package token
