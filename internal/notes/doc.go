// Package notes loads optional ref annotations from a line-oriented text
// file. Each line holds a ref name followed by free-text commentary; the file
// is allowed to be absent, in which case an empty map is returned.
package notes
