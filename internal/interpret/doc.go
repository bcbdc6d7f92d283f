// Package interpret turns a roster spreadsheet into a validated list
// of persons.
//
// # Pipeline
//
// A file is read under several header-offset hypotheses (the header
// row is rarely the first row of real exports). Under each hypothesis
// every column is handed to a fixed set of role classifiers; a column
// is accepted when exactly one classifier recognizes it. The per-
// column outcomes are then assembled into a person list: the
// identifier, given-name, and family-name roles must each be bound
// once, email is optional, and a row yields a person only when every
// required role validated it. Exactly one hypothesis must survive;
// anything else fails with a diagnostic tree recording what was tried.
//
// # Classification
//
// A classifier gates on the column header (prefix pattern over the
// lower-cased, trimmed text, Swedish and English forms) and then
// validates content row by row, accepting the column when at least 80%
// of rows hold plausible values. Name columns measure that share over
// all rows; identifier and email columns measure it over their own
// extraction sequence.
//
// # Write-back
//
// A successful analysis carries a Collector bound to the chosen
// header offset and the raw rows above it. SetResults upserts result
// columns, assigns one row, and rewrites the whole file, preserving
// pre-header rows verbatim.
package interpret
