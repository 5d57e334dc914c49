// Package writers owns every byte that leaves the process.
//
// Design:
//   • Image files go through WriteFileAtomic: a temp sibling, fsync, rename.
//   • Matrix previews dispatch by format name through a registry; encoders
//     live in internal/output.
//   • A closed stdout (`| head`) is not an error; see IsBrokenPipe.
package writers
