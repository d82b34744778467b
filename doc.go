// Package cashcast forecasts future account balances from a book of known or
// expected cash events. It is designed to be local-first and auditable: the
// event book is a human-readable JSONL file, and every forecast is
// reproducible from an explicit seed.
//
// The core functionalities include:
//   - Event Book Management: Recording expected income and expense events
//     (an id, a label, a signed amount and a date) in a canonical,
//     version-controllable format.
//   - Monte Carlo Simulation: Running an ensemble of independent trials in
//     which each event's date and amount are randomly perturbed, folding the
//     perturbed events into one cumulative daily balance trajectory per
//     trial.
//   - Percentile Forecast: Reducing the ensemble, day by day, into p10/p25/
//     p50/p75/p90 confidence bands.
//   - Report Persistence: Archiving simulation reports in a local SQLite
//     database for later inspection, rendering, or publication.
//
// This package serves as the foundational logic for the `ccast` command-line
// tool; the simulation itself performs no I/O and is a deterministic
// function of its inputs and the seed.
package cashcast
