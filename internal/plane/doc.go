// Package plane finds the reference plane that governs a signal layer and
// aggregates the dielectric between them.
//
// # Rules
//
//   - The scan in each direction stops at the first copper layer. It counts as
//     a reference only if its class is Plane.
//   - Every layer between the signal and the plane must have positive
//     thickness and Dk; H is their summed thickness and Er their
//     thickness-weighted mean.
//   - A top layer must reference downward and a bottom layer upward. An inner
//     layer uses whichever side exists, or the nearer (smaller H) when both
//     do, preferring downward on a tie.
//
// A bad selection is a domain.InputValidationError and every structural
// failure a domain.StackupStructureError; no partial reference is returned.
package plane
