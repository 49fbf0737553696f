// Package publish uploads exported image tarballs to S3-compatible object
// storage, creating the target bucket when needed and refusing accidental
// overwrites of already-published images.
package publish
