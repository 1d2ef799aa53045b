package sectionize

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
)

// inputExts are the extensions ExpandInputs collects from directories.
var inputExts = map[string]bool{".xlsx": true, ".xlsm": true, ".json": true}

// FileResult is the outcome of transforming one input file.
type FileResult struct {
	// Path is the input path.
	Path string
	// Document is the loaded, segmented input (nil on load failure).
	Document *models.Document
	// Output is the structured result; nil when Found is false.
	Output *models.Output
	// Found reports whether any section was extracted.
	Found bool
	// Err is the load error, if any.
	Err error
}

// ExpandInputs replaces directories in paths by the workbook and workbook
// JSON files they directly contain, skipping earlier structured outputs.
// Files are kept as given.
func ExpandInputs(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if os.IsNotExist(err) {
			return nil, eris.Wrapf(ErrFileNotFound, "%s", p)
		}
		if err != nil {
			return nil, eris.Wrapf(err, "stat %s", p)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, eris.Wrapf(err, "read dir %s", p)
		}
		var found []string
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || strings.HasPrefix(name, "structured_") || strings.HasPrefix(name, "~$") {
				continue
			}
			if inputExts[strings.ToLower(filepath.Ext(name))] {
				found = append(found, filepath.Join(p, name))
			}
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}

// TransformFiles loads and transforms paths with at most workers files in
// flight. Results are returned in input order; per-file failures are
// reported in FileResult.Err and do not stop the batch. The returned error
// is only set when ctx is cancelled.
func (p *Pipeline) TransformFiles(ctx context.Context, paths []string, workers int) ([]FileResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := FileResult{Path: path}
			res.Document, res.Err = Load(path, p.log)
			if res.Err != nil {
				p.log.Warn("load failed", zap.String("path", path), zap.Error(res.Err))
			} else {
				res.Output, res.Found = p.Transform(res.Document)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, eris.Wrap(err, "transform files")
	}
	return results, nil
}
