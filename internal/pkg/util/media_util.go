package util

import (
	"Ripple/internal/pkg/consts"
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/disintegration/imaging"
)

// ImageMeta 校验通过后的图片元信息
type ImageMeta struct {
	MimeType string
	Size     int64
	Width    int
	Height   int
	Data     []byte
}

// ValidateImage 校验上传图片的大小与类型，并解析尺寸
func ValidateImage(fileHeader *multipart.FileHeader) (*ImageMeta, error) {
	if fileHeader.Size > consts.MaxImageSizeKB*1024 {
		return nil, fmt.Errorf("图片超过 %dKB 限制", consts.MaxImageSizeKB)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if _, ok := consts.AllowedImageMimeTypes[contentType]; !ok {
		return nil, fmt.Errorf("不支持的图片类型: %s", contentType)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	data := make([]byte, fileHeader.Size)
	if _, err = io.ReadFull(file, data); err != nil {
		return nil, err
	}

	meta := &ImageMeta{
		MimeType: contentType,
		Size:     fileHeader.Size,
		Data:     data,
	}

	// SVG 是矢量格式，没有固定像素尺寸
	if contentType == "image/svg+xml" {
		return meta, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("图片解码失败: %w", err)
	}
	bounds := img.Bounds()
	meta.Width = bounds.Dx()
	meta.Height = bounds.Dy()

	return meta, nil
}
