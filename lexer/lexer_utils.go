/*
File    : polyscript/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isIdentStart reports whether c can open an identifier: [A-Za-z_].
// Non-ASCII bytes never qualify; outside of string literals they surface as
// IllegalCharError rather than being accepted as identifier text.
func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isIdentPart reports whether c can continue an identifier begun by
// isIdentStart: [A-Za-z_0-9].
func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// isSpace reports whether c is skippable whitespace (space, tab, or carriage
// return).
// Newline is handled separately because it becomes a NEWLINE token rather
// than being discarded.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}
