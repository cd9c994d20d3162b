package audio

import (
	"github.com/bogem/id3v2"
)

// TagEditAction defines how to handle individual ID3 tags.
//
// Each tag field can be configured independently to determine whether
// it should be modified, cleared, or left unchanged.
type TagEditAction int

const (
	// TagEmpty clears the tag value.
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value derived from the song folder.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field.
//
// Example:
//
//	cfg := &TagConfig{
//	    Artist:     TagModify,      // artist from the folder name
//	    TrackTitle: TagModify,      // title from the folder name
//	    Cover:      TagDoNotModify, // keep whatever cover the mapper embedded
//	}
type TagConfig struct {
	// Artist controls the TPE1 (Lead artist) frame.
	Artist TagEditAction

	// TrackTitle controls the TIT2 (Title) frame.
	TrackTitle TagEditAction

	// Cover controls the APIC (Attached picture) frame. With TagModify the
	// cover is only replaced when Tags.Cover is non-empty.
	Cover TagEditAction
}

// DefaultTagConfig returns the default tag configuration: artist and title
// are written, existing pictures are replaced only when a cover is supplied.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		Artist:     TagModify,
		TrackTitle: TagModify,
		Cover:      TagModify,
	}
}

// Tags are the values written into an exported MP3.
type Tags struct {
	Artist string
	Title  string

	// Cover is JPEG image data for the front cover. Nil skips the picture.
	Cover []byte
}

// Tagger writes ID3 tags to MP3 files.
//
// Tagger uses the id3v2 library to modify MP3 file metadata:
//   - Artist
//   - Title
//   - Cover Art (attached picture)
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	err := tagger.SetTags("/out/Artist - Title.mp3", Tags{Artist: "Artist", Title: "Title"})
//	if err != nil {
//	    log.Printf("Failed to tag: %v", err)
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SetTags writes ID3 tags to the MP3 file at path.
//
// Existing frames not covered by TagConfig are preserved. Files without an
// ID3 header get a new one prepended.
//
// Returns an error if the file cannot be opened, parsed or saved.
func (t *Tagger) SetTags(path string, tags Tags) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	t.updateStringTags(tag, tags)
	t.updateCover(tag, tags.Cover)

	return tag.Save()
}

// updateStringTags updates text-based ID3 frames based on configuration.
func (t *Tagger) updateStringTags(tag *id3v2.Tag, tags Tags) {
	switch t.config.Artist {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID("Artist"))
	case TagModify:
		tag.SetArtist(tags.Artist)
	}

	switch t.config.TrackTitle {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID("Title"))
	case TagModify:
		tag.SetTitle(tags.Title)
	}
}

// updateCover embeds cover art as an attached picture frame.
func (t *Tagger) updateCover(tag *id3v2.Tag, cover []byte) {
	switch t.config.Cover {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID("Attached picture"))
	case TagModify:
		if len(cover) == 0 {
			return
		}
		tag.DeleteFrames(tag.CommonID("Attached picture"))
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     cover,
		})
	}
}
