package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is the class of every "expected file or folder is absent"
// error. Callers test for it with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrMissingAudio is returned when the audio file referenced by a song's
// descriptor does not exist in the song folder.
var ErrMissingAudio = fmt.Errorf("audio file %w", ErrNotFound)
