package export

import (
	"fmt"

	"github.com/handiism/osu-music-export/internal/model"
)

// ErrSongsNotFound is returned by Manager.Run when the installation has no
// Songs folder. It aborts the whole run.
var ErrSongsNotFound = fmt.Errorf("Songs folder %w", model.ErrNotFound)
