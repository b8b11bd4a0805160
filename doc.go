// Package pdoc provides the types and logic behind a small personal
// invoicing and bookkeeping tool. It is designed to be local-first and
// auditable: every record is a single human-readable YAML file under a
// per-kind directory, and every generated document can be traced back
// to the records it was assembled from.
//
// The core functionalities include:
//   - Entity Records: clients, projects, invoices, receipts, and the
//     operator's own profile, each with an interactive creation
//     workflow and a strict YAML schema.
//   - Flat-File Storage: uniform save/load/list/find operations over a
//     data root directory, with keys doubling as filenames.
//   - Document Rendering: LaTeX templates filled from fully
//     dereferenced aggregates and compiled to PDF by an external
//     pdflatex, plus a plain-text accounting ledger export.
//
// This package serves as the foundational logic for the `pdoc`
// command-line tool.
package pdoc
