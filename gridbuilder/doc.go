// Package gridbuilder constructs small deterministic grid fixtures for
// tests and examples: rooms on a blocked field, wall-separated room pairs,
// room chains, isolated pockets, and checkerboards.
//
// Design contract:
//
//   - Pure constructors: same arguments, same grid, no randomness.
//   - No panics; invalid geometry returns a sentinel error.
//   - Every constructor returns a fresh *grid.BoolGrid the caller owns.
//
// Errors:
//
//   - ErrBadDimensions: a width, height, size, or count is < 1, or a gap
//     or wall thickness is < 0.
//   - ErrOutOfField: a room rectangle or pocket cell falls outside the field.
package gridbuilder
