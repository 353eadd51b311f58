// Package exporter renders summary tables as copy-paste friendly text and as
// Excel workbooks. The delimited output is a byte-exact contract: re-parsing
// it with the same delimiter reproduces the original cell strings, with
// missing cells rendered as empty strings.
package exporter
