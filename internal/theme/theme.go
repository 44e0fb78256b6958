// Package theme maps numbered color pairs to lipgloss styles. Pairs can be
// overridden by a YAML file:
//
//	colors:
//	  sky: "#5fafff"
//	pairs:
//	  6: {fg: sky}
//	  12: {fg: "#000000", bg: sky}
//
// Entries that fail to parse keep their built-in colors.
package theme

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Pair identifies a foreground/background combination.
type Pair int

const (
	File           Pair = 1
	ActiveFrame    Pair = 2
	InactiveFrame  Pair = 3
	InactiveHeader Pair = 4
	SelectedFile   Pair = 5
	Dir            Pair = 6
	SelectedDir    Pair = 7
	Error          Pair = 8
	Info           Pair = 9
	Header         Pair = 12
)

// Aliases for pairs that serve more than one element.
const (
	Progress       = InactiveFrame
	InactiveFooter = Error
	ActiveFooter   = Info
	ActivePathBar  = Header
)

// Colors is one pair's resolved hex foreground and optional background.
type Colors struct {
	FG string
	BG string
}

// Theme is an immutable pair table.
type Theme struct {
	pairs map[Pair]Colors
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var defaults = map[Pair]Colors{
	File:           {FG: "#d0d0d0"},
	ActiveFrame:    {FG: "#5fd7ff"},
	InactiveFrame:  {FG: "#6c6c6c"},
	InactiveHeader: {FG: "#bcbcbc", BG: "#3a3a3a"},
	SelectedFile:   {FG: "#000000", BG: "#5fd7ff"},
	Dir:            {FG: "#5fafff"},
	SelectedDir:    {FG: "#000000", BG: "#5fafff"},
	Error:          {FG: "#ff5f5f"},
	Info:           {FG: "#87d787"},
	Header:         {FG: "#000000", BG: "#5fd7ff"},
}

// Default returns the built-in palette.
func Default() *Theme {
	pairs := make(map[Pair]Colors, len(defaults))
	for id, c := range defaults {
		pairs[id] = c
	}
	return &Theme{pairs: pairs}
}

type fileFormat struct {
	Colors map[string]string `yaml:"colors"`
	Pairs  map[int]struct {
		FG string `yaml:"fg"`
		BG string `yaml:"bg"`
	} `yaml:"pairs"`
}

// Load reads path. A missing file yields the default theme and no error;
// otherwise the returned theme is always usable even when err is non-nil.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}

// Parse overlays the pairs in data on the default palette.
func Parse(data []byte) (*Theme, error) {
	t := Default()
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return t, fmt.Errorf("parse theme: %w", err)
	}

	var errs []error
	resolve := func(v string) (string, bool) {
		if v == "" {
			return "", true
		}
		if hex, ok := f.Colors[v]; ok {
			v = hex
		}
		return v, hexColor.MatchString(v)
	}
	for id, p := range f.Pairs {
		fg, okFG := resolve(p.FG)
		bg, okBG := resolve(p.BG)
		if !okFG || !okBG || fg == "" {
			errs = append(errs, fmt.Errorf("pair %d: invalid colors %q,%q", id, p.FG, p.BG))
			continue
		}
		t.pairs[Pair(id)] = Colors{FG: fg, BG: bg}
	}
	return t, errors.Join(errs...)
}

// Colors returns the colors of id, or the File pair for unknown ids.
func (t *Theme) Colors(id Pair) Colors {
	if c, ok := t.pairs[id]; ok {
		return c
	}
	return t.pairs[File]
}

// Pair returns a style carrying the colors of id.
func (t *Theme) Pair(id Pair) lipgloss.Style {
	c := t.Colors(id)
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.FG))
	if c.BG != "" {
		s = s.Background(lipgloss.Color(c.BG))
	}
	return s
}
