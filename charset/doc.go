// Package charset resolves text encoding names and decodes file contents
// into Go strings.
//
// Encoding names follow the WHATWG encoding index (golang.org/x/text), so
// "utf-8", "latin1", "iso-8859-1", "utf-16le", "windows-1252" and their
// aliases all work. An empty name means UTF-8.
//
// A Policy controls what happens to byte sequences that are invalid in the
// source encoding: PolicyStrict fails, PolicyReplace substitutes U+FFFD,
// PolicyIgnore drops them. The default is strict.
package charset
