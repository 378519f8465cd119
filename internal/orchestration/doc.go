// Package orchestration runs the selected multipliers over one request,
// compares their products and drives exhaustive verification. Presentation
// stays behind the ResultPresenter and ProgressReporter interfaces.
package orchestration
