// Package fixture verifies the engine against labeled example files.
//
// A fixture is a Rust source file that declares its own expectations in
// comment directives:
//
//	// rustvet:fires N1 N2     these ids must fire at least once here
//	// rustvet:silent N2       these ids must not fire here at all
//
// A file without directives is a fully negative fixture: any violation fails
// it. Verification reports the mismatched rule ids per case (missing and
// unexpectedly present) rather than a bare pass/fail, which keeps failures
// diagnosable while the catalog evolves.
//
// Corpora live either as plain directories of .rs files or packed into txtar
// archives; both go through the same comparison.
package fixture
