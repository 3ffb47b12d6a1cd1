// Package knight walks the Trapped Knight: starting from a point on the
// spiral-numbered lattice, a knight repeatedly jumps to the legal destination
// with the lowest spiral label it has not visited yet, and stops for good once
// every destination has been visited.
//
// A Path is owned by a single caller and is not safe for concurrent use.
package knight
