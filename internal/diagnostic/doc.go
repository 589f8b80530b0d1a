// Package diagnostic provides structured warnings and notes about a
// component schema that parsed successfully.
//
// Diagnostics never change what is synthesized. They report things the
// synthesis deliberately does not defend against:
//   - Components deriving the same aggregate field or index type
//   - Colliding aggregate accessor names
//   - Secondary indices that are declared but not built
package diagnostic
