package audio

import (
	"strings"
	"testing"

	"github.com/handiism/osu-music-export/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistCreator_M3U(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, false)

	content := creator.CreatePlaylist("osu!", createTestPlans())

	assert.Equal(t, "Artist - Song Title.mp3\nUnknown - OnlyTitle.ogg\n", content)
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, true)

	content := creator.CreatePlaylist("osu!", createTestPlans())

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	assert.Contains(t, content, "#EXTINF:-1,Artist - Song Title\nArtist - Song Title.mp3\n")
}

func TestPlaylistCreator_PLS(t *testing.T) {
	creator := NewPlaylistCreator(FormatPLS, false)

	content := creator.CreatePlaylist("osu!", createTestPlans())

	assert.True(t, strings.HasPrefix(content, "[playlist]"))
	assert.Contains(t, content, "File1=Artist - Song Title.mp3")
	assert.Contains(t, content, "Title2=Unknown - OnlyTitle")
	assert.Contains(t, content, "NumberOfEntries=2")
}

func TestPlaylistCreator_WPL(t *testing.T) {
	creator := NewPlaylistCreator(FormatWPL, false)

	content := creator.CreatePlaylist("Rock & Roll", createTestPlans())

	assert.Contains(t, content, "<?wpl")
	assert.Contains(t, content, "<title>Rock &amp; Roll</title>")
	assert.Contains(t, content, `<media src="Artist - Song Title.mp3"/>`)
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	creator := NewPlaylistCreator(FormatZPL, false)

	content := creator.CreatePlaylist("osu!", createTestPlans())

	assert.Contains(t, content, "<?zpl")
	assert.Contains(t, content, `<meta name="ItemCount" content="2"/>`)
	assert.Contains(t, content, `trackArtist="Unknown"`)
}

func TestPlaylistCreator_Empty(t *testing.T) {
	content := NewPlaylistCreator(FormatPLS, false).CreatePlaylist("osu!", nil)
	assert.Contains(t, content, "NumberOfEntries=0")
}

func TestParsePlaylistFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    PlaylistFormat
		wantExt string
	}{
		{"", FormatM3U, ".m3u"},
		{"m3u", FormatM3U, ".m3u"},
		{"PLS", FormatPLS, ".pls"},
		{"wpl", FormatWPL, ".wpl"},
		{" zpl ", FormatZPL, ".zpl"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlaylistFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantExt, got.Extension())
		})
	}

	_, err := ParsePlaylistFormat("xspf")
	assert.Error(t, err)
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&apos;s&lt;/a&gt;", escapeXML(`<a href="x">Tom & Jerry's</a>`))
}

func createTestPlans() []*model.ExportPlan {
	return []*model.ExportPlan{
		{Artist: "Artist", Title: "Song Title", Extension: ".mp3", FileName: "Artist - Song Title.mp3"},
		{Artist: "Unknown", Title: "OnlyTitle", Extension: ".ogg", FileName: "Unknown - OnlyTitle.ogg"},
	}
}
