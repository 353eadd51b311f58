// Package services holds the business layer between transport and the data
// processing engine. Services own orchestration (ingest, filter, summarize,
// render) and return domain results; they never touch HTTP types.
package services
