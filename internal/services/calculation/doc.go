// Package calculation turns a stackup, a selected signal layer and trace
// geometry into a graded differential-impedance result.
//
// It resolves the reference plane, solves for Zdiff and stamps the result
// with an ID and a stackup digest for log correlation. Failures are terminal
// for the request; no partial result is returned.
package calculation
