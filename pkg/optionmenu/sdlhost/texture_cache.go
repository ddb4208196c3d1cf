package sdlhost

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 64

type textKey struct {
	text  string
	bold  bool
	color color.NRGBA
}

type textTexture struct {
	texture *sdl.Texture
	w, h    int32
}

// textureCache keeps rendered labels between frames, evicting the least
// recently used once full.
type textureCache struct {
	textures map[textKey]textTexture
	order    []textKey
	maxSize  int
}

func newTextureCache(maxSize int) *textureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &textureCache{
		textures: make(map[textKey]textTexture),
		order:    make([]textKey, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *textureCache) get(key textKey) (textTexture, bool) {
	t, ok := c.textures[key]
	if ok {
		c.moveToEnd(key)
	}
	return t, ok
}

func (c *textureCache) set(key textKey, t textTexture) {
	if old, exists := c.textures[key]; exists {
		if old.texture != t.texture {
			old.texture.Destroy()
		}
		c.textures[key] = t
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = t
	c.order = append(c.order, key)
}

func (c *textureCache) moveToEnd(key textKey) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *textureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if t, exists := c.textures[oldest]; exists {
		t.texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *textureCache) destroy() {
	for _, t := range c.textures {
		t.texture.Destroy()
	}
	c.textures = make(map[textKey]textTexture)
	c.order = c.order[:0]
}
