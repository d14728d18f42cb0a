// File: classify.go
// Title: Interval Classifier
// Description: Infers the coarsest interval type at which every sample of a
//              set of timestamps is aligned.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

// classifyScan lists the interval types checked by Classify, finest first.
// Week is not part of the scan since week boundaries are not aligned with
// month or year boundaries.
var classifyScan = [...]IntervalType{Second, Minute, Hour, Day, Month, Year}

// Classify returns the coarsest interval type T for which Floor(t, T) == t
// holds for every sample. The scan stops at the first type that fails and
// returns its predecessor, Millisecond if already Second fails. Without
// samples the result is Year.
func (c Calendar) Classify(samples []Timestamp) IntervalType {
	prev := Millisecond
	for _, typ := range classifyScan {
		for _, t := range samples {
			if c.Floor(t, typ) != t {
				return prev
			}
		}
		prev = typ
	}
	return Year
}
