// Package libdiff computes line differences between documents.
//
// Texts are compared line by line with diffmatchpatch; trees are compared
// through their ir.Out Dump listings, so a difference in type shows even
// when the serialized text would look alike.
package libdiff
