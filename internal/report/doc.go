// Package report lays out ranked (label, amount) pairs into aligned,
// currency-formatted plain-text blocks under strict width constraints, and
// composes blocks into the channel breakout reports. Output is a byte-exact
// contract for downstream copy/paste tooling: no line ever exceeds the
// computed block width and every body line keeps at least one space between
// label and amount.
package report
