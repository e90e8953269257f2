package imagemodel

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"

	"kgeyst.com/modelkit/pkg/modelkit/domain"
)

// ReadImageInfo decodes just the header of the image. Failures are reported in ImageInfo.Error.
func ReadImageInfo(imagePath string) domain.ImageInfo {
	file, err := os.Open(imagePath)
	if err != nil {
		return domain.ImageInfo{Error: err.Error()}
	}
	defer func() {
		_ = file.Close()
	}()
	config, format, err := image.DecodeConfig(file)
	if err != nil {
		return domain.ImageInfo{Error: err.Error()}
	}
	return domain.ImageInfo{
		Format: strings.ToUpper(format),
		Mode:   colorMode(config.ColorModel),
		Size:   []int{config.Width, config.Height},
	}
}

// colorMode names the color model the way imaging tools usually do ("RGB", "L", "P" etc.)
func colorMode(model color.Model) string {
	if _, ok := model.(color.Palette); ok {
		return "P"
	}
	switch model {
	case color.GrayModel:
		return "L"
	case color.Gray16Model:
		return "I;16"
	case color.CMYKModel:
		return "CMYK"
	case color.YCbCrModel, color.RGBAModel, color.RGBA64Model:
		return "RGB"
	case color.NRGBAModel, color.NRGBA64Model:
		return "RGBA"
	default:
		return "unknown"
	}
}
