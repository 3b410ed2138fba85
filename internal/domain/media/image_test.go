package media

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImages_MixedList(t *testing.T) {
	raw := `["http://a/1.jpg", {"url":"http://a/2.jpg","exif":{"iso":100}}]`

	got := ParseImages(raw)

	require.Len(t, got, 2)
	assert.Equal(t, ImageRef{URL: "http://a/1.jpg"}, got[0])
	assert.Equal(t, ImageRef{URL: "http://a/2.jpg", Exif: map[string]any{"iso": float64(100)}}, got[1])

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"url":"http://a/1.jpg","exif":null},{"url":"http://a/2.jpg","exif":{"iso":100}}]`, string(out))
}

func TestParseImages_Fallbacks(t *testing.T) {
	assert.Equal(t, []ImageRef{}, ParseImages("not json"))
	assert.Equal(t, []ImageRef{}, ParseImages(`{"url":"x"}`))
	assert.Equal(t, []ImageRef{}, ParseImages(""))
}

func TestNormalizeImages_DropsUnknownEntries(t *testing.T) {
	got := NormalizeImages([]any{nil, float64(3), "http://a/3.jpg", map[string]any{"exif": nil}})

	assert.Equal(t, []ImageRef{{URL: "http://a/3.jpg"}, {URL: ""}}, got)
}

func TestNormalizeImages_FalsyExifIsNull(t *testing.T) {
	got := NormalizeImages([]any{
		map[string]any{"url": "a", "exif": false},
		map[string]any{"url": "b", "exif": ""},
		map[string]any{"url": "c", "exif": float64(0)},
		map[string]any{"url": "d", "exif": "f/2.8"},
	})

	require.Len(t, got, 4)
	assert.Nil(t, got[0].Exif)
	assert.Nil(t, got[1].Exif)
	assert.Nil(t, got[2].Exif)
	assert.Equal(t, "f/2.8", got[3].Exif)
}
