// Package emporium keeps the books of a betting syndicate. Partners deposit
// capital, the operator places wagers on their behalf, and profits are split
// by a per-partner commission percentage.
//
// The core functionalities include:
//   - Record Keeping: the four base collections (bets, partners, funds,
//     withdrawals) stored as an append-only, human-readable JSONL book where
//     re-writing an id supersedes the previous record.
//   - Outcome Resolution: a pure calculator that resolves a settled wager
//     into its final return and the partner/admin profit split. Commission
//     applies to profit only, never to loss.
//   - Aggregation: scope statistics (one partner or the whole book) derived
//     fresh from the base collections on every read.
//   - Movement Ledger: deposits, withdrawals and per-wager stake/return
//     events merged into one deterministically ordered, running-balance
//     sequence that must reconcile with the real bookmaker account balance.
//   - Reporting: date-ranged performance reports exported as CSV.
//
// This package serves as the foundational logic for the `fes` command-line
// tool; it performs no I/O of its own beyond loading and saving book files,
// and every derived view is recomputed from scratch so that the two
// independent views (statistics and ledger) can be cross-checked.
package emporium
