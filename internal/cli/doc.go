// Package cli is the interactive console: a read-eval-print loop over three
// pages (dashboard, SVC records, user accounts). Global commands switch
// pages and manage the session; everything else is dispatched to the current
// page.
package cli
