// Package stackup owns the session stackup: the layer list being edited and
// the signal layer selected for calculation.
//
// Every mutation reconciles the selection, so Selected always names a
// current signal layer or is empty. The service is not safe for concurrent
// use; callers serialize.
package stackup
