// Package receipt renders submission receipts from pongo2 templates. The
// bundled templates produce a plain text receipt for terminal sessions and a
// standalone HTML page for the dev server; callers can swap in their own
// template bundle through options.
package receipt
