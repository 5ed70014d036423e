package pnglist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

const (
	// DefaultDir is the directory scanned when neither a flag nor the config
	// file names one.
	DefaultDir = "."
	// DefaultOutput is the file written when neither a flag nor the config
	// file names one.
	DefaultOutput = "png_files_list.txt"
	// DefaultConfigFile is looked for in the working directory when no
	// config file is given explicitly. It is optional.
	DefaultConfigFile = "pnglist.json"
)

const (
	// ErrCodeNotFound means an explicitly requested config file doesn't exist.
	ErrCodeNotFound = "config_not_found"
	// ErrCodeInvalid means the config file couldn't be read or parsed, or a
	// setting is invalid.
	ErrCodeInvalid = "config_invalid"
)

// ConfigError is an error in loading settings, tagged with one of the
// ErrCode constants.
type ConfigError struct {
	Code string
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ConfigErrorCode returns the code of a *ConfigError in err's chain, or the
// empty string if there is none.
func ConfigErrorCode(err error) string {
	var e *ConfigError
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// FileConfig is the contents of a pnglist.json file. Every field is
// optional. Dir and Output may refer to environment variables, as in
// "$HOME/assets". Backslashes in them are kept as written, so Windows paths
// such as `\\server\share\icons` or `C:\assets` need no extra escaping; a
// literal "$" can't be written.
type FileConfig struct {
	Dir         string `json:"dir"`
	Output      string `json:"output"`
	Suffix      string `json:"suffix"`
	IncludeDirs *bool  `json:"include_dirs"`
}

// Flags holds the command-line settings, recording which ones were given
// explicitly so that they can override the config file.
type Flags struct {
	ConfigFile string

	Dir    string
	DirSet bool

	Output    string
	OutputSet bool

	Suffix    string
	SuffixSet bool

	IncludeDirs    bool
	IncludeDirsSet bool
}

// Settings are the effective settings after merging defaults, the config
// file, and flags, in increasing order of precedence.
type Settings struct {
	Dir         string
	Output      string
	Suffix      string
	IncludeDirs bool
}

// Lister returns a Lister for these settings that logs to log.
func (s Settings) Lister(log *slog.Logger) Lister {
	return Lister{
		Dir:         s.Dir,
		Output:      s.Output,
		Suffix:      s.Suffix,
		IncludeDirs: s.IncludeDirs,
		Logger:      log,
	}
}

// LoadSettings reads the config file named by flags.ConfigFile, or else
// DefaultConfigFile in cwd if it exists, and merges it with flags. Variables
// in the config file's paths are resolved with env; if env is nil, the
// process environment is used.
func LoadSettings(cwd string, flags Flags, env func(string) string) (Settings, error) {
	path := flags.ConfigFile
	required := path != ""
	if !required {
		path = filepath.Join(cwd, DefaultConfigFile)
	}
	fc, exists, err := readFileConfig(path)
	if err != nil {
		return Settings{}, &ConfigError{Code: ErrCodeInvalid, Path: path, Err: err}
	}
	if required && !exists {
		return Settings{}, &ConfigError{Code: ErrCodeNotFound, Path: path, Err: os.ErrNotExist}
	}
	fc, err = expandPaths(fc, env)
	if err != nil {
		return Settings{}, &ConfigError{Code: ErrCodeInvalid, Path: path, Err: err}
	}
	return merge(fc, flags)
}

func merge(fc FileConfig, flags Flags) (Settings, error) {
	s := Settings{
		Dir:    pick(DefaultDir, fc.Dir, flags.Dir, flags.DirSet),
		Output: pick(DefaultOutput, fc.Output, flags.Output, flags.OutputSet),
		Suffix: pick(DefaultSuffix, fc.Suffix, flags.Suffix, flags.SuffixSet),
	}
	switch {
	case flags.IncludeDirsSet:
		s.IncludeDirs = flags.IncludeDirs
	case fc.IncludeDirs != nil:
		s.IncludeDirs = *fc.IncludeDirs
	}
	if strings.TrimSpace(s.Suffix) == "" {
		return Settings{}, &ConfigError{Code: ErrCodeInvalid, Err: errors.New("suffix must not be empty")}
	}
	if s.Dir == "" {
		return Settings{}, &ConfigError{Code: ErrCodeInvalid, Err: errors.New("dir must not be empty")}
	}
	if s.Output == "" {
		return Settings{}, &ConfigError{Code: ErrCodeInvalid, Err: errors.New("output must not be empty")}
	}
	return s, nil
}

// pick applies flag > file > default.
func pick(def, file, flag string, flagSet bool) string {
	if flagSet {
		return flag
	}
	if strings.TrimSpace(file) != "" {
		return file
	}
	return def
}

func expandPaths(fc FileConfig, env func(string) string) (FileConfig, error) {
	dir, err := expandPath(fc.Dir, env)
	if err != nil {
		return fc, fmt.Errorf("dir %q: %w", fc.Dir, err)
	}
	output, err := expandPath(fc.Output, env)
	if err != nil {
		return fc, fmt.Errorf("output %q: %w", fc.Output, err)
	}
	fc.Dir, fc.Output = dir, output
	return fc, nil
}

// expandPath expands variables in path. Expansion follows double-quote rules,
// where "\\" becomes "\", so backslashes are doubled first to survive it.
func expandPath(path string, env func(string) string) (string, error) {
	return shell.Expand(strings.ReplaceAll(path, `\`, `\\`), env)
}

// readFileConfig reports exists == false, with no error, if path doesn't
// exist.
func readFileConfig(path string) (fc FileConfig, exists bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return FileConfig{}, false, nil
	}
	if err != nil {
		return FileConfig{}, false, err
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, true, err
	}
	return fc, true, nil
}
