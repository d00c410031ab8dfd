package utils

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/portfolio/pkg/embedded"
)

// ImageCache 按图片标识加载并缓存项目预览图
//
// 图片从 dir/<imageID> 读取（优先嵌入资源，否则文件系统）。
// 加载失败的标识只记录一次日志，之后直接返回 nil，由调用方绘制占位卡片。
type ImageCache struct {
	dir     string
	images  map[string]*ebiten.Image
	missing map[string]bool
}

// NewImageCache 创建图片缓存
func NewImageCache(dir string) *ImageCache {
	return &ImageCache{
		dir:     dir,
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

// Get 返回图片，加载失败时返回 nil
func (c *ImageCache) Get(imageID string) *ebiten.Image {
	if img, ok := c.images[imageID]; ok {
		return img
	}
	if c.missing[imageID] || imageID == "" {
		return nil
	}

	img, err := c.load(imageID)
	if err != nil {
		log.Printf("[ImageCache] %s unavailable, using placeholder: %v", imageID, err)
		c.missing[imageID] = true
		return nil
	}
	c.images[imageID] = img
	return img
}

func (c *ImageCache) load(imageID string) (*ebiten.Image, error) {
	data, err := embedded.ReadConfigFile(path.Join(c.dir, path.Base(imageID)))
	if err != nil {
		return nil, err
	}
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(decoded), nil
}

// Len 已缓存的图片数量
func (c *ImageCache) Len() int {
	return len(c.images)
}
