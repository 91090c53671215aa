// Package services contains the application services of the console: the
// per-page record managers that coordinate fetching, filtering state,
// selection, and mutations against the backend, and the dashboard service
// that feeds the aggregator.
//
// Every mutation follows the same shape: raise the busy flag, call the
// backend, drop the flag on every exit path, surface the outcome through
// the Notifier, and on success replace the whole local collection with a
// fresh full fetch. There is no incremental patching of local state.
package services
