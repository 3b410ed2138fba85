package media

import "portfolio-api/internal/domain/jsoncol"

// ImageRef is one asset inside a gallery-like list. Older rows store bare URL
// strings; everything leaving the API has this shape. Exif is filled by the
// photo tooling, if at all, and passed through untouched.
type ImageRef struct {
	URL  string `json:"url"`
	Exif any    `json:"exif"`
}

// NormalizeImages converts a decoded JSON list into image refs. Strings become
// {url, exif: null}; objects keep url and exif; anything else is dropped.
// Falsy exif values (false, "", 0) read as null.
func NormalizeImages(items []any) []ImageRef {
	out := make([]ImageRef, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, ImageRef{URL: v})
		case map[string]any:
			ref := ImageRef{Exif: exifOrNil(v["exif"])}
			if u, ok := v["url"].(string); ok {
				ref.URL = u
			}
			out = append(out, ref)
		}
	}
	return out
}

// ParseImages hydrates a stored image list column.
func ParseImages(raw string) []ImageRef {
	return NormalizeImages(jsoncol.List(raw))
}

func exifOrNil(v any) any {
	switch x := v.(type) {
	case bool:
		if !x {
			return nil
		}
	case string:
		if x == "" {
			return nil
		}
	case float64:
		if x == 0 {
			return nil
		}
	}
	return v
}
