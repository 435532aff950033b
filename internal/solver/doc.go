// Package solver computes edge-coupled differential impedance from trace
// geometry and a resolved dielectric stack, and grades it against a target.
//
// Two closed-form models are used, selected by a hard W/H threshold:
//
//   - W/H >= 1: a best-fit microstrip formula for wide traces
//   - W/H <  1: a width-corrected effective-permittivity model for narrow traces
//
// When the lateral ground is closer than the plane (S < H) the result is
// scaled by a coplanar (CPWG) factor. Every function is pure.
package solver
