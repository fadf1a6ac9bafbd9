// Package jsonvalue provides a generic, ordered JSON value tree with
// range-checked numeric access.
//
// A Value is a tagged union over null, bool, number, string, array and
// object. Object members keep their source order, and numbers remember
// whether the source scalar was written as an integer, which is what makes
// the numeric coercion rules exact: Int64 accepts 4 and 4.0 but rejects 4.5,
// instead of silently truncating.
//
// Values are built either with the New* constructors or by parsing raw
// document bytes with Parse. Parse accepts JSON as well as YAML-authored
// documents, since the backing parser treats JSON as a YAML subset.
package jsonvalue
