// Package gen renders a SynthesisPlan into Go source.
//
// Generation uses text/template + golang.org/x/tools/imports for readable,
// deterministic output. The emitted file contains:
//   - One index type per component, embedding the runtime index by value
//     (imported as csindex)
//   - One constructor per index type
//   - The aggregate store struct and its constructor
//   - Aggregate accessors forwarding to each component's index
package gen
