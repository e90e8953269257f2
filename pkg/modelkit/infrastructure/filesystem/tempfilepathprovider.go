package filesystem

import (
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"kgeyst.com/modelkit/pkg/common"
	"kgeyst.com/modelkit/pkg/modelkit/domain"
)

type TempFilePathProvider struct {
	tempDirectoryPath string
}

func NewTempFilePathProvider(config *common.Config) *TempFilePathProvider {
	return &TempFilePathProvider{
		tempDirectoryPath: config.GetStringOrDefault(domain.ConfigKeyTempDirectory, os.TempDir()),
	}
}

// GetTempFilePathForURL returns a fresh path to download `rawURL` to. The original file name is kept as the suffix,
// since models look at the extension (and the simulated image model at the whole name).
func (t *TempFilePathProvider) GetTempFilePathForURL(rawURL string) string {
	fileName := "download"
	parsed, err := url.Parse(rawURL)
	if err == nil {
		if base := path.Base(parsed.Path); base != "." && base != "/" {
			fileName = base
		}
	}
	return filepath.Join(t.tempDirectoryPath, uuid.NewString()+"_"+fileName)
}
