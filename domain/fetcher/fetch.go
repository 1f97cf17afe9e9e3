package fetcher

import (
	"context"
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"xgraph-bench/logging"
	"xgraph-bench/repository/metadata"
	"xgraph-bench/utils"
)

const partialSuffix = ".part"

var (
	ErrBadStatus     = errors.New("non-success status code")
	ErrEmptyFileName = errors.New("empty file name")
)

type fetcher struct {
	setting *FetchSetting
	client  *http.Client
	logger  *logrus.Logger
	chunk   int
}

func newFetcher(setting *FetchSetting) *fetcher {
	f := &fetcher{
		setting: setting,
		client:  setting.Client,
		logger:  setting.Logger,
		chunk:   setting.ChunkSize,
	}

	if f.client == nil {
		f.client = http.DefaultClient
	}
	if f.logger == nil {
		f.logger = logging.Default()
	}
	if f.chunk <= 0 {
		f.chunk = DefaultChunkSize
	}

	return f
}

func (f *fetcher) loadData(ctx context.Context, resources []Resource, targetDir string, overwrite bool) []*Report {
	reports := make([]*Report, 0, len(resources))
	for _, resource := range resources {
		reports = append(reports, f.ensureDownloaded(ctx, resource, targetDir, overwrite))
	}

	return reports
}

func (f *fetcher) ensureDownloaded(ctx context.Context, resource Resource, targetDir string, overwrite bool) *Report {
	report := &Report{
		Resource: resource,
		Path:     filepath.Join(targetDir, resource.FileName),
	}

	f.check(ctx, report, targetDir, overwrite)
	f.record(report)

	return report
}

func (f *fetcher) check(ctx context.Context, report *Report, targetDir string, overwrite bool) {
	if len(report.Resource.FileName) == 0 {
		f.fail(report, utils.WrapErrorf(ErrEmptyFileName, "url %#v", report.Resource.URL))
		return
	}

	if err := os.MkdirAll(targetDir, os.ModePerm); err != nil {
		f.fail(report, utils.WrapErrorf(err, "mkdir %#v fail", targetDir))
		return
	}

	if info, err := os.Stat(report.Path); err == nil && info.Mode().IsRegular() && !overwrite {
		report.Status = StatusExisted
		report.Bytes = info.Size()
		f.logger.Infof("file existed at: %s", report.Path)
		return
	}

	n, err := f.download(ctx, report.Resource.URL, report.Path)
	if err != nil {
		f.fail(report, err)
		return
	}

	report.Status = StatusDownloaded
	report.Bytes = n
	f.logger.Infof("file downloaded successfully to: %s (%s)", report.Path, humanize.Bytes(uint64(n)))
}

func (f *fetcher) fail(report *Report, err error) {
	report.Status = StatusFailed
	report.Err = err
	f.logger.WithError(err).Errorf("download %s failed:\n%v", report.Resource.FileName, err)
}

func (f *fetcher) record(report *Report) {
	if f.setting.GetMetadataDatabase == nil {
		return
	}

	if err := metadata.SaveDownload(f.setting.GetMetadataDatabase(), report.toModel()); err != nil {
		f.logger.WithError(err).Warnf("record download of %s fail: %v", report.Resource.FileName, err)
	}
}

/*
download 将 url 的响应体写入 path。

先写入 path + ".part"，成功后再重命名为 path；失败时删除 .part 文件，已有的 path 保持不变。
*/
func (f *fetcher) download(ctx context.Context, url string, path string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, utils.WrapErrorf(err, "build request for %#v fail", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, utils.WrapErrorf(err, "request %#v fail", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, utils.WrapError(ErrBadStatus, fmt.Sprintf("%s for url: %s", resp.Status, url))
	}

	partial := path + partialSuffix
	out, err := os.Create(partial)
	if err != nil {
		return 0, utils.WrapErrorf(err, "create %#v fail", partial)
	}

	n, err := f.writeChunks(out, resp.Body)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = utils.WrapErrorf(closeErr, "close %#v fail", partial)
	}

	if err == nil {
		err = os.Rename(partial, path)
	}

	if err != nil {
		if removeErr := os.Remove(partial); removeErr != nil && !os.IsNotExist(removeErr) {
			f.logger.WithError(removeErr).Warnf("remove partial file %s fail", partial)
		}
		return n, err
	}

	f.logger.Debugf("%s: %s written", path, humanize.Bytes(uint64(n)))
	return n, nil
}

func (f *fetcher) writeChunks(out io.Writer, body io.Reader) (int64, error) {
	buf := make([]byte, f.chunk)

	var written int64
	for {
		n, err := body.Read(buf)
		// 跳过长度为 0 的块
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return written, utils.WrapError(werr, "write chunk fail")
			}
			written += int64(n)
		}

		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, utils.WrapError(err, "read body fail")
		}
	}
}
