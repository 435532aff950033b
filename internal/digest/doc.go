// Package digest fingerprints stackups so calculation results can be tied to
// the exact layer data they were computed from.
package digest
