// Package export provides the orchestration logic for copying song audio
// out of an osu! installation.
//
// # Manager
//
// The Manager coordinates the entire export:
//
//  1. Check the Songs folder of the located installation
//  2. List song folders in lexicographic order
//  3. Skip the reserved "Failed" folder and configured skip patterns
//  4. Read the first .osu descriptor of each folder
//  5. Copy the audio as "Artist - Title.ext" into the output folder
//  6. Tag MP3 files with ID3 metadata (optional)
//  7. Generate a playlist (optional)
//
// # Basic Usage
//
//	manager := export.NewManager(settings, func(event model.ProgressEvent) {
//	    fmt.Println(event.Level, event.Message)
//	})
//
//	results, err := manager.Run(ctx, installation)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, failed := results.Summary()
//
// # Failures
//
// A folder that cannot be exported is recorded in Results and the run moves
// on. Only a missing Songs folder (ErrSongsNotFound), an unusable output
// folder or cancellation end a run early.
//
// # Dry Run
//
// Plan resolves every folder exactly like Run and reports the file names it
// would write, without touching the output folder.
package export
