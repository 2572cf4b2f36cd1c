// Package normalize provides the mechanical text cleanups that run
// before any heuristic pass: whitespace collapsing and the fixed
// punctuation substitutions (ellipsis, dashes, guillemets).
//
// Every function is a pure transformation from string to string, total
// over all inputs, and operates strictly at code-point granularity.
// Substitution rules never merge a run with its surrounding characters;
// a disabled rule (see typograph.Config) is a full pass-through.
package normalize
