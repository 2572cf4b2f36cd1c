// Package escape maps reserved characters to safe sequences for a
// target output format. It is the collaborator the formatting pipeline
// hands its result to: the core transformations never call it, callers
// sequence it before or after as the target format requires.
//
// All functions are pure and total; inputs without reserved characters
// are returned unchanged.
package escape
