// Package orchestration runs a histogram sweep: the reference computation
// repeated a fixed number of times, then every configured thread count
// repeated the same number of times, each run verified against the
// reference. It decouples the sweep from presentation via the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
