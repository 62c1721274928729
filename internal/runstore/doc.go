// Package runstore persists a ledger of encode and decode runs backed by
// SQLite. Every CLI invocation that touches a dataset records what it did,
// which scheme it used, and how much degradation decoding absorbed, so
// label files on disk can always be traced back to the run that wrote them.
package runstore
