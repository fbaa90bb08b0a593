// Package billing holds the invoice composition core: the mutable
// InvoiceDraft a form session edits, the derived totals engine, the
// per-session catalog snapshot, and the immutable Invoice record a
// validated draft freezes into.
package billing
