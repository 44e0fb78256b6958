// Package opener decides how a file is opened from the browser and starts the
// chosen program detached from the UI.
package opener

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"zeta/internal/logging"
)

// ErrNoProgram is returned when none of a spec's programs is installed.
var ErrNoProgram = errors.New("no program available to open file")

// Kind is a broad file category.
type Kind int

const (
	Other Kind = iota
	Text
	Image
	PDF
	Video
	Audio
	Python
	Shell
)

// Spec describes how files of one kind are opened.
type Spec struct {
	Kind Kind
	// Programs are tried in order; the first one installed wins.
	Programs []string
	// Terminal runs the program inside a terminal emulator window.
	Terminal bool
}

// Script reports whether the file is run rather than viewed.
func (s Spec) Script() bool {
	return s.Kind == Python || s.Kind == Shell
}

// Terminals lists emulators that accept "-e program args...".
var Terminals = []string{"xterm", "urxvt", "alacritty", "konsole", "lxterminal"}

const holdOpen = `; echo; echo "Press Enter to close..."; read _`

var specs = map[Kind]Spec{
	Text:   {Kind: Text, Programs: []string{"nano", "vi"}, Terminal: true},
	Image:  {Kind: Image, Programs: []string{"feh", "eog", "xdg-open"}},
	PDF:    {Kind: PDF, Programs: []string{"evince", "xdg-open"}},
	Video:  {Kind: Video, Programs: []string{"mpv", "vlc", "xdg-open"}},
	Audio:  {Kind: Audio, Programs: []string{"mpv", "xdg-open"}},
	Python: {Kind: Python, Programs: []string{"python3"}, Terminal: true},
	Shell:  {Kind: Shell, Programs: []string{"bash", "sh"}, Terminal: true},
	Other:  {Kind: Other, Programs: []string{"less", "more"}, Terminal: true},
}

var byExt = map[string]Kind{
	".py": Python,
	".sh": Shell,
}

func init() {
	group := func(k Kind, exts ...string) {
		for _, ext := range exts {
			byExt[ext] = k
		}
	}
	group(Text, ".txt", ".md", ".c", ".cpp", ".h", ".java", ".js", ".html", ".css",
		".json", ".yml", ".yaml", ".xml", ".ini", ".conf", ".go", ".rs", ".toml")
	group(Image, ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".svg")
	group(PDF, ".pdf")
	group(Video, ".mp4", ".avi", ".mkv", ".mov", ".webm", ".flv")
	group(Audio, ".mp3", ".wav", ".ogg", ".flac")
}

// For returns the spec for a file extension such as ".PDF". Unknown
// extensions get the pager spec.
func For(ext string) Spec {
	if k, ok := byExt[strings.ToLower(ext)]; ok {
		return specs[k]
	}
	return specs[Other]
}

// LookPath finds an installed program, like exec.LookPath.
type LookPath func(file string) (string, error)

// Resolve turns spec into the argument vector that opens path. An Other file
// that is executable is run instead of paged.
func Resolve(spec Spec, path string, executable bool, look LookPath) ([]string, error) {
	if look == nil {
		look = exec.LookPath
	}
	dir, base := filepath.Dir(path), filepath.Base(path)

	var argv []string
	switch {
	case spec.Kind == Python || spec.Kind == Shell:
		prog, err := first(spec.Programs, look)
		if err != nil {
			return nil, err
		}
		argv = []string{"bash", "-c", `cd "$1" && "$2" "$3"` + holdOpen, "zeta", dir, prog, base}
	case spec.Kind == Other && executable:
		argv = []string{"bash", "-c", `cd "$1" && "./$2"` + holdOpen, "zeta", dir, base}
	default:
		prog, err := first(spec.Programs, look)
		if err != nil {
			return nil, err
		}
		argv = []string{prog, path}
	}

	if spec.Terminal {
		term, err := first(Terminals, look)
		if err != nil {
			return nil, fmt.Errorf("terminal emulator: %w", err)
		}
		argv = append([]string{term, "-e"}, argv...)
	}
	return argv, nil
}

func first(candidates []string, look LookPath) (string, error) {
	for _, c := range candidates {
		if p, err := look(c); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w (tried %s)", ErrNoProgram, strings.Join(candidates, ", "))
}

// Launch starts argv in its own session and reaps it in the background.
func Launch(argv []string) error {
	if len(argv) == 0 {
		return ErrNoProgram
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", filepath.Base(argv[0]), err)
	}
	logging.L().Info().Strs("argv", argv).Int("pid", cmd.Process.Pid).Msg("launched")
	go func() {
		if err := cmd.Wait(); err != nil {
			logging.L().Debug().Err(err).Str("prog", argv[0]).Msg("launched program exited")
		}
	}()
	return nil
}

// Open opens path according to its extension. Scripts without an execute
// bit get one first.
func Open(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	spec := For(filepath.Ext(path))
	mode := info.Mode()
	if spec.Script() && mode.Perm()&0o111 == 0 {
		mode |= 0o111
		if err := os.Chmod(path, mode.Perm()); err != nil {
			return fmt.Errorf("make executable: %w", err)
		}
	}
	argv, err := Resolve(spec, path, mode.Perm()&0o111 != 0, exec.LookPath)
	if err != nil {
		return err
	}
	return Launch(argv)
}
