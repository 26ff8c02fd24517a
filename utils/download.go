package utils

import (
	"io"
	"mime"
	"os"
	"path"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

// maxDownloadSize caps the size of a downloaded stylesheet or font file.
const maxDownloadSize = 20 << 20

// rejectedContentTypes are served by error or login pages instead of the requested resource.
var rejectedContentTypes = []string{"text/html", "text/xml"}

var (
	httpClient     *retryablehttp.Client
	httpClientOnce sync.Once
)

// getHTTPClient returns the shared retryable HTTP client, initializing it on first call.
func getHTTPClient() *retryablehttp.Client {
	httpClientOnce.Do(func() {
		httpClient = retryablehttp.NewClient()
		httpClient.RetryMax = 3
		httpClient.HTTPClient.Timeout = 30 * time.Second
		httpClient.Logger = nil
	})
	return httpClient
}

// DownloadFile downloads a remote stylesheet or font file and saves it into a temporary file.
// The temporary file keeps the extension of the remote resource, since
// it is used for guessing the font format. The caller should remove the file.
func DownloadFile(uri string) (*os.File, error) {
	res, err := getHTTPClient().Get(uri)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to download file from URI: %s", uri)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return nil, errors.Errorf("unable to download file from URI: %s, status %v", uri, res.Status)
	}

	tmpfile, err := os.CreateTemp("", "iconfont-*"+path.Ext(res.Request.URL.Path))
	if err != nil {
		return nil, errors.Wrap(err, "unable to create temporary file")
	}

	// Copy the downloaded data into the temporary file.
	if _, err := io.Copy(tmpfile, io.LimitReader(res.Body, maxDownloadSize)); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, errors.Wrap(err, "unable to copy the source URI into the destination file")
	}
	if _, err := tmpfile.Seek(0, io.SeekStart); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, err
	}

	ctype, err := DetectContentType(tmpfile.Name())
	if err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, err
	}
	if mediaType, _, _ := mime.ParseMediaType(ctype); Contains(rejectedContentTypes, mediaType) {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, errors.Errorf("unexpected content type %s downloaded from URI: %s", ctype, uri)
	}

	return tmpfile, nil
}
