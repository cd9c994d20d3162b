package osu

import (
	"errors"
	"fmt"

	"github.com/handiism/osu-music-export/internal/model"
)

var (
	// ErrNoDescriptor is returned when a song folder holds no .osu files.
	ErrNoDescriptor = fmt.Errorf("descriptor %w", model.ErrNotFound)

	// ErrMalformedDescriptor is returned when a .osu file declares no
	// AudioFilename.
	ErrMalformedDescriptor = errors.New("malformed descriptor")

	// ErrNotInstalled is returned by Locator.Locate when every probe missed
	// and no prompter is configured.
	ErrNotInstalled = fmt.Errorf("osu! installation %w", model.ErrNotFound)

	// errRegistryUnsupported is returned by the registry query on platforms
	// without a Windows registry.
	errRegistryUnsupported = errors.New("registry not supported on this platform")
)
