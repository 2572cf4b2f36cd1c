// Package french applies French typographic spacing rules to text that
// has already been through quote normalization: narrow no-break spaces
// before high punctuation (: ; ! ?), no-break spaces binding guillemets
// to their content, dialog and incise dash spacing, and no-break thin
// spaces inside number groups and before units or currency symbols.
//
// Formatting is best applied per paragraph, since the formatter assumes
// the start of its input is also the start of a line. A Formatter value
// is immutable once constructed and safe to share across goroutines;
// every call allocates its own output.
package french
