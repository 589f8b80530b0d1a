// Package plan builds the SynthesisPlan a component store is emitted from.
//
// Synthesis pipeline:
//  1. Parse the schema token stream into ComponentSpec values
//  2. For each component, in schema order, derive its names and build a
//     SynthesisFragment (index type, aggregate field, field initializer)
//  3. Fold the fragments into one SynthesisPlan: sibling index types, the
//     aggregate type and its constructor
//
// The pipeline is a pure function of its input. It performs no I/O, keeps no
// state between runs and never produces a partially valid plan.
package plan
