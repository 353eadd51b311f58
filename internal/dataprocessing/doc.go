// Package dataprocessing turns an uploaded revenue-event file into normalized
// records and grouped summaries. It owns the complete ingest lifecycle:
// format sniffing and decoding, fuzzy column mapping, type coercion, derived
// channel and calendar buckets, and multi-key aggregation.
//
// # Data Flow
//
// The typical flow through this package:
//
//	CSV/Excel source → Reader → Dataset → (filter) → Summarizer → SummaryTables
//
// Channel classification and calendar bucketing are pure functions computed
// per snapshot; they never mutate the ingested Dataset.
//
// # Error Handling
//
// Ingestion either fully succeeds or fully fails: unreadable sources and
// unresolved required columns abort with a single descriptive error, while
// malformed individual cells degrade to defined defaults (zero revenue,
// sentinel date) and never abort an otherwise valid ingest. An empty dataset
// is a valid state, not an error; every function here is total over it.
package dataprocessing
