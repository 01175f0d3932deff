// Package patcher rewrites protobuf schemas that declare an edition back to
// proto3 syntax.
//
// Generators without editions support refuse schemas that open with
// `edition = "2023";`. The patcher streams a schema through a byte-level
// state machine and replaces the leading edition declaration with
// `syntax = "proto3"`, copying every other byte through untouched. Only a
// declaration appearing before the first non-comment token is rewritten;
// the word "edition" inside comments or message bodies never is.
package patcher
