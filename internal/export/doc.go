// Package export writes extracted objects as PNG files.
//
// Objects are named {base}_objekt_{index}.png, where base is the source file
// name without extension and index is the 1-based position of the object in
// its extraction result. A Sink decides where the files go: DirSink writes
// to a local directory and S3Sink uploads to a bucket.
package export
