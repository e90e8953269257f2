package common

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// DownloadFromURL saves the content of the URL to `filePath`, overwriting it.
// TODO limit the size: a URL which streams forever fills up the disk.
func DownloadFromURL(url, filePath string) error {
	res, err := http.Get(url)
	if err != nil {
		return err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download %s: %s", url, res.Status)
	}
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	_, err = io.Copy(file, res.Body)
	closeErr := file.Close()
	if err != nil {
		return err
	}
	return closeErr
}
