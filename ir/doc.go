// Package ir defines the canonical in-memory representation shared by
// every dx format surface.
//
// A Document is produced by exactly one parser (readable, compact, or
// binary) per conversion and is treated as immutable once handed to a
// formatter or serializer.  Edits produce a new Document; no component
// holds a Document beyond a single conversion call.
package ir
