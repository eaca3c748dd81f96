// Package files provides file system discovery utilities for the MEG
// data-preparation pipeline.
//
// Discovery locates the chunked recording containers of a participant
// inside a base directory. Files are matched by a participant-specific
// glob pattern and a fixed extension; task bucketing and chunk ordering
// are the loader's concern, not this package's.
//
// Example usage:
//
//	// Create a discovery instance
//	discovery := files.NewDiscovery("/data/meg")
//
//	// Find all recording files for one participant
//	recFiles, err := discovery.FindRecordingFiles("intra", "105923")
package files
