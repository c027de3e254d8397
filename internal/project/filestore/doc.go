// Package filestore loads documents into buffers and saves them back
// atomically.
//
// Save never leaves a partially written target behind: text is written to
// a hidden sibling temp file (".<name>.tmp"), synced to disk and renamed
// over the target. On failure the temp file is removed and the original
// target, if any, is untouched.
package filestore
