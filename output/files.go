package output

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/c360studio/cobayaconv/vocabulary/cobaya"
)

// ErrNoOutput is returned when removing artifacts of a run without output.
var ErrNoOutput = errors.New("no output prefix")

// Output resolves artifact paths for one output prefix.
type Output struct {
	folder string
	prefix string
	// enabled is false for the empty prefix, which means no output
	enabled bool
	logger  *slog.Logger
}

// New creates an Output for prefix. A nil logger uses slog.Default().
func New(prefix string, logger *slog.Logger) *Output {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Output{logger: logger, enabled: prefix != ""}
	if prefix == "" || strings.HasSuffix(prefix, "/") || strings.HasSuffix(prefix, string(filepath.Separator)) {
		o.folder = filepath.Clean(prefix)
		if prefix == "" {
			o.folder = "."
		}
		return o
	}
	o.folder = filepath.Dir(prefix)
	o.prefix = filepath.Base(prefix)
	return o
}

// Folder returns the output folder.
func (o *Output) Folder() string {
	return o.folder
}

// Prefix returns the file name prefix, empty for folder-only outputs.
func (o *Output) Prefix() string {
	return o.prefix
}

// FileName returns the path of the artifact with the given suffix and
// extension. Either may be empty.
func (o *Output) FileName(suffix, ext string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{o.prefix, suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	name := strings.Join(parts, cobaya.SeparatorFiles) + ext
	name = strings.TrimPrefix(name, cobaya.SeparatorFiles)
	return filepath.Join(o.folder, name)
}

// InputFile returns the path of the input file as given by the user.
func (o *Output) InputFile() string {
	return o.FileName(cobaya.SuffixInput, cobaya.ExtensionYAML)
}

// UpdatedFile returns the path of the input file with defaults filled in.
func (o *Output) UpdatedFile() string {
	return o.FileName(cobaya.SuffixUpdated, cobaya.ExtensionYAML)
}

// DillFile returns the path of the pickled updated input.
func (o *Output) DillFile() string {
	return o.FileName(cobaya.SuffixUpdated, cobaya.ExtensionDill)
}

// CheckpointFile returns the path of the sampler checkpoint.
func (o *Output) CheckpointFile() string {
	return o.FileName("", cobaya.ExtensionCheckpoint)
}

// ProgressFile returns the path of the sampler progress table.
func (o *Output) ProgressFile() string {
	return o.FileName("", cobaya.ExtensionProgress)
}

// CovmatFile returns the path of the proposal covariance matrix.
func (o *Output) CovmatFile() string {
	return o.FileName("", cobaya.ExtensionCovmat)
}

// EvidenceFile returns the path of the log-evidence estimate.
func (o *Output) EvidenceFile() string {
	return o.FileName("", cobaya.ExtensionEvidence)
}

// Artifacts returns the paths of every artifact a run may write.
func (o *Output) Artifacts() []string {
	return []string{
		o.InputFile(),
		o.UpdatedFile(),
		o.DillFile(),
		o.CheckpointFile(),
		o.ProgressFile(),
		o.CovmatFile(),
		o.EvidenceFile(),
	}
}

// ExistingFiles returns the files in the output folder that belong to this
// prefix, sorted. Folder-only outputs match the known artifact names only.
func (o *Output) ExistingFiles() ([]string, error) {
	if o.prefix == "" {
		var files []string
		for _, path := range o.Artifacts() {
			info, err := os.Stat(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, fmt.Errorf("stat %s: %w", path, err)
			}
			if info.Mode().IsRegular() {
				files = append(files, path)
			}
		}
		sort.Strings(files)
		return files, nil
	}

	pattern := escapeGlob(o.folder) + "/" + escapeGlob(o.prefix) + cobaya.SeparatorFiles + "*"
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Clean removes the existing files of this prefix. Used when forcing a run
// over a previous one. Returns ErrNoOutput for the empty prefix.
func (o *Output) Clean() error {
	if !o.enabled {
		return ErrNoOutput
	}
	files, err := o.ExistingFiles()
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("remove %s: %w", f, err)
		}
		o.logger.Debug("Removed output file", slog.String("path", f))
	}
	return nil
}

// IsYAMLFile reports whether path has a YAML extension.
func IsYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range cobaya.YAMLExtensions() {
		if ext == e {
			return true
		}
	}
	return false
}

// escapeGlob quotes doublestar meta characters in a literal path.
func escapeGlob(s string) string {
	s = filepath.ToSlash(s)
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
