// Package stackup builds and edits PCB stackups.
//
// Generate materializes the layer sequence for a copper-layer count from a
// fixed class lookup and the configured layer templates. The remaining
// functions are explicit queries and edits over a domain.Stackup value:
// callers re-run the queries (TotalThickness, SignalLayerNames, Reselect)
// after every mutation instead of relying on change notifications.
//
// Values are normalized to float64 here; text from editors or CSV files is
// parsed on the way in and never stored.
package stackup
