package typeface

import (
	"golang.org/x/text/cases"

	"github.com/gogpu/ggfx/internal/cache"
)

// DefaultCacheSize is the initial capacity of the typeface cache.
const DefaultCacheSize = 10

// faceKey identifies a family and style independent of letter case.
type faceKey struct {
	family string
	style  string
}

func keyFor(family, style string) faceKey {
	if style == "" {
		style = DefaultStyle
	}
	fold := cases.Fold()
	return faceKey{family: fold.String(family), style: fold.String(style)}
}

// typefaceCache holds the typefaces most recently returned by ForFont.
var typefaceCache = newTypefaceCache()

func newTypefaceCache() *cache.Cache[faceKey, Typeface] {
	c := cache.New[faceKey, Typeface](DefaultCacheSize)
	c.OnEvict(func(_ faceKey, tf Typeface) {
		Logger().Debug("typeface: evicted from cache", "family", tf.Name(), "style", tf.Style())
	})
	return c
}

// SetCacheSize sets how many typefaces ForFont keeps resident. Values
// below 1 are raised to 1. Shrinking evicts the least recently used
// entries.
func SetCacheSize(n int) {
	typefaceCache.SetCapacity(n)
}

// CacheSize returns the capacity of the typeface cache.
func CacheSize() int {
	return typefaceCache.Capacity()
}

// CachedCount returns the number of typefaces currently cached.
func CachedCount() int {
	return typefaceCache.Len()
}

// ClearCache drops every cached typeface. Typefaces already handed out
// stay valid.
func ClearCache() {
	typefaceCache.Clear()
}
