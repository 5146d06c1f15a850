package steps

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/gravitational/trace"

	"github.com/gravitational/rtinstall/internal/action"
)

// FetchArchive downloads the runtime's release tarball and unpacks it into
// a staging directory, retrying the fetch with exponential backoff. It
// implements action.NetworkValidator since Execute reaches the network.
type FetchArchive struct {
	URL      string        `json:"url"`
	DestDir  string        `json:"dest_dir"`
	MaxRetry time.Duration `json:"max_retry"`
}

func (s *FetchArchive) Typetag() string { return "fetch_archive" }

func (s *FetchArchive) DescribeExecute() []action.Description {
	return []action.Description{{
		Description: fmt.Sprintf("Fetch and unpack %v into %v", s.URL, s.DestDir),
	}}
}

func (s *FetchArchive) DescribeRevert() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Remove unpacked tree at %v", s.DestDir)}}
}

func (s *FetchArchive) TracingSynopsis() string {
	return fmt.Sprintf("fetch %v", s.URL)
}

// RequiresNetwork reports that Execute performs an outbound fetch.
func (s *FetchArchive) RequiresNetwork() bool { return true }

func (s *FetchArchive) Execute(ctx context.Context) error {
	if err := os.MkdirAll(s.DestDir, 0o755); err != nil {
		return trace.ConvertSystemError(err)
	}

	maxRetry := s.MaxRetry
	if maxRetry == 0 {
		maxRetry = 5 * time.Minute
	}
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxRetry
	bo := backoff.WithContext(b, ctx)

	var body io.ReadCloser
	err := backoff.RetryNotify(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
		if err != nil {
			return backoff.Permanent(trace.Wrap(err))
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return trace.Wrap(err)
		}
		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return trace.Wrap(trace.BadParameter("server error %v fetching %v", resp.StatusCode, s.URL))
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return backoff.Permanent(trace.BadParameter("unexpected status %v fetching %v", resp.StatusCode, s.URL))
		}
		body = resp.Body
		return nil
	}, bo, func(err error, d time.Duration) {})
	if err != nil {
		return trace.Wrap(err, "failed to fetch %v", s.URL)
	}
	defer body.Close()

	return extractTarGz(body, s.DestDir)
}

func (s *FetchArchive) Revert(ctx context.Context) error {
	if err := os.RemoveAll(s.DestDir); err != nil && !os.IsNotExist(err) {
		return trace.ConvertSystemError(err)
	}
	return nil
}

// extractTarGz unpacks a gzip-compressed tar stream under dest, refusing
// any entry whose resolved path would escape dest.
func extractTarGz(r io.Reader, dest string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return trace.Wrap(err, "not a gzip stream")
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return trace.Wrap(err, "reading tar entry")
		}
		target := filepath.Join(dest, filepath.Clean(hdr.Name))
		if !isWithin(dest, target) {
			return trace.BadParameter("archive entry %q escapes destination", hdr.Name)
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(hdr.Mode)); err != nil {
				return trace.ConvertSystemError(err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return trace.ConvertSystemError(err)
			}
			f, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(hdr.Mode))
			if err != nil {
				return trace.ConvertSystemError(err)
			}
			_, copyErr := io.Copy(f, tr)
			closeErr := f.Close()
			if copyErr != nil {
				return trace.Wrap(copyErr, "writing %v", target)
			}
			if closeErr != nil {
				return trace.ConvertSystemError(closeErr)
			}
		}
	}
}

func isWithin(base, target string) bool {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	return rel != ".." && !hasDotDotPrefix(rel)
}

func hasDotDotPrefix(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}

func init() {
	action.Register("fetch_archive", func() action.Action { return &FetchArchive{} })
}
