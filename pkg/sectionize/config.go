package sectionize

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v2"
)

// configNames are searched, in order, under the XDG config directories.
var configNames = []string{
	"sectionize/config.toml",
	"sectionize/config.yaml",
	"sectionize/config.yml",
}

// LoadOptions reads options from a TOML or YAML file, chosen by extension.
// Values present in the file replace the defaults; absent ones keep them.
// Lists are replaced as a whole. An empty path returns the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}
	var file Options

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return opts, eris.Wrapf(ErrFileNotFound, "config %s", path)
	}
	if err != nil {
		return opts, eris.Wrapf(err, "read config %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return opts, eris.Wrapf(err, "decode TOML config %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return opts, eris.Wrapf(err, "decode YAML config %s", path)
		}
	default:
		return opts, eris.Wrapf(ErrUnsupportedInput, "config %s", path)
	}
	return mergeOptions(opts, file), nil
}

// mergeOptions overlays the set fields of file on base.
func mergeOptions(base, file Options) Options {
	v, f := &base.Vocabulary, file.Vocabulary
	if f.PeriodMarkers != nil {
		v.PeriodMarkers = f.PeriodMarkers
	}
	if f.StructuralLabels != nil {
		v.StructuralLabels = f.StructuralLabels
	}
	if f.MonthlyMarker != "" {
		v.MonthlyMarker = f.MonthlyMarker
	}
	if f.ProfileMarker != "" {
		v.ProfileMarker = f.ProfileMarker
	}
	if f.ProfileTitle != "" {
		v.ProfileTitle = f.ProfileTitle
	}
	if f.FilingMarkers != nil {
		v.FilingMarkers = f.FilingMarkers
	}
	if f.CatalogEchoes != nil {
		v.CatalogEchoes = f.CatalogEchoes
	}
	if f.DetailsHeaderMarkers != nil {
		v.DetailsHeaderMarkers = f.DetailsHeaderMarkers
	}
	if f.IndexTitle != "" {
		v.IndexTitle = f.IndexTitle
	}
	if f.IndexBanners != nil {
		v.IndexBanners = f.IndexBanners
	}
	if f.Bifurcation != nil {
		v.Bifurcation = f.Bifurcation
	}
	if file.Sheets != nil {
		base.Sheets = file.Sheets
	}
	return base
}

// FindConfig returns the first config file found under the XDG config
// directories, or "" when there is none.
func FindConfig() string {
	for _, name := range configNames {
		if path, err := xdg.SearchConfigFile(name); err == nil {
			return path
		}
	}
	return ""
}
