// Package persistence stores the per-target state that survives reboots:
// the minimum cap and the saved value.
//
// Each value lives in its own file holding a single decimal integer:
//
//	<state>/targets/<enumerator>/<device>/<target>/minimum
//	<state>/targets/<enumerator>/<device>/<target>/save
//
// Directories are created on demand with mode 0775. There is no locking;
// two processes writing the same file race and the last write wins.
package persistence
