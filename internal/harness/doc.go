// Package harness runs conformance scenarios against the chain evaluator.
//
// A scenario is a YAML file listing programs, operand values, and expected
// outcomes. The harness evaluates every case, records a trace event per
// case, and fails the run on any expectation mismatch. Traces serialize to
// deterministic JSON so golden files can pin the exact behavior of a
// scenario across changes (see RunWithGolden).
//
// The harness exists for testing and the CLI's scenario runner; it adds no
// semantics of its own on top of package chain.
package harness
