// Package recording loads chunked MEG recordings for one participant.
// It consolidates file discovery, filename parsing, and chunk
// concatenation into a single loader that hands callers one in-memory
// matrix per experimental task.
//
// # Architecture
//
// The package has two components:
//
// 1. Filename parser: derives the dataset name, task, and chunk index
// from a container filename
// 2. Loader: discovers a participant's files, reads each container, and
// concatenates chunks per task along the time axis
//
// # Usage
//
//	loader := recording.NewLoader(slog.Default(), "/data/meg")
//	data, err := loader.LoadParticipant(ctx, "105923")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if data.Rest != nil {
//	    rows, cols := data.Rest.Dims()
//	    // nodes x timepoints
//	}
//
// # Error Handling
//
// The only validation failure is a node-count mismatch across chunks of
// the same task, reported as an errs.ValidationError. Files whose names
// do not parse or whose dataset does not match a known task are skipped
// silently; I/O failures on a matched file abort the load.
package recording
