// Package report builds the survey report.
//
// A run walks a static page catalog in order. The cover and the executive summary come first,
// then every catalog entry is loaded from its CSV source, rendered by the generator bound to its
// kind, and handed to the emitter before the next entry starts. A page that cannot be loaded or
// generated is logged and left out of the report; the run carries on with the next entry. Only
// failures on the fixed pages or while writing the output stop the run.
//
// Run options (see the model package) observe the run: the measure option records per-page
// durations and the drawer option writes the run as a DOT graph.
package report
