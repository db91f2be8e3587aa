// Package importance scores planning units by how much the solution depends
// on them.
//
// What: ReplacementCost re-solves the problem once per selected unit with
// that unit forced out of every zone. The score is the resulting loss in
// objective quality: extra cost under minimization, lost value under
// maximization. A unit whose removal makes the problem infeasible is
// irreplaceable and scores +Inf; units outside the solution score zero.
//
// Why: two solutions with equal objectives can hinge on very different
// units. Replacement cost separates the units that merely happened to be
// cheap from the ones no alternative can stand in for, which is what review
// processes actually ask about.
//
// The analysis solves one program per selected unit, so its cost is the
// solve time times the selection size. Pass the same solver options used for
// the original solve to keep scores comparable.
package importance
