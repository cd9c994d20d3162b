// Package osu knows where osu! lives and how its song folders are laid out.
//
// The package handles two main use cases:
//
//  1. Locating the installation root (the folder containing osu!.exe)
//  2. Reading a song folder's .osu descriptor to find its audio file
//
// # Installation Discovery
//
// A Locator tries each Probe in order and falls back to a Prompter:
//
//	locator := osu.NewLocator(osu.DefaultProbes(""), osu.NewLinePrompter(os.Stdin, os.Stdout), nil)
//	inst, err := locator.Locate(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(inst.SongsDir())
//
// The default chain is:
//   - RegistryProbe: the DefaultIcon value registered for .osz2 files
//     (Windows only; a no-op elsewhere)
//   - ConfiguredProbe: a directory from flags, environment or settings
//   - CommonDirsProbe: %LOCALAPPDATA%\osu! and both Program Files folders
//
// # Descriptors
//
// Each song folder holds one .osu file per difficulty. Only the first one in
// lexicographic order is read:
//
//	desc, err := osu.ReadSong(folder)
//	if errors.Is(err, model.ErrNotFound) {
//	    // no .osu files at all
//	}
//	fmt.Println(desc.AudioFilename) // e.g. "audio.mp3"
package osu
