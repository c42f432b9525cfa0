// Package testutil provides the fixture catalogue and test data shared by
// package tests.
//
// # Fixture Catalogue
//
// Catalogue builds a fresh, frozen registry that is small enough to reason
// about in assertions but still covers every resolution path:
//
//   - languages "alpha-v1", "alpha-v10" and "alpha-v2" registered out of
//     version order, and the unversioned "beta";
//   - a language specific serialization "alpha-v2-compact";
//   - formats and serializations with disjoint tags;
//   - the concept series "scheme" with versions SchemeV1 and SchemeV2;
//   - concepts with closure ("root", "child", "grandchild");
//   - two "legacy" concepts published under different versions of one base
//     URI, for ambiguity checks.
//
// Tests import testutil from external test packages (package foo_test) when
// the package under test is itself imported by testutil.
//
// # Mocks
//
// MockCatalogue wraps a catalogue and counts lookups, for asserting that
// memoized paths do not reach the catalogue.
package testutil
