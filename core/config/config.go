package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file name the shell looks for in its
// configuration directory.
const ConfigurationName = "config.yaml"

// Configuration holds the user-tunable settings of the shell.
type Configuration struct {
	configFs  afero.Fs
	configDir string

	// Colors tunes how built-in commands and errors render.
	Colors Colors `json:"colors"`

	// HistoryFile names the persisted command history, relative to the
	// configuration directory.
	HistoryFile string `json:"history_file" validate:"required"`
}

// Colors holds "R;G;B" color triples.
type Colors struct {
	DirectoryText string `json:"directory_text" validate:"required,rgb"`
	FilenameText  string `json:"filename_text" validate:"required,rgb"`
	ErrorText     string `json:"error_text" validate:"required,rgb"`
}

// ParseRGB splits an "R;G;B" triple into its channels.
func ParseRGB(triple string) (r, g, b int, ok bool) {
	parts := strings.Split(triple, ";")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}

	var channels [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 || v > 255 {
			return 0, 0, 0, false
		}
		channels[i] = v
	}
	return channels[0], channels[1], channels[2], true
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})
	if err := validate.RegisterValidation("rgb", func(fl validator.FieldLevel) bool {
		_, _, _, ok := ParseRGB(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// HistoryPath is the location of the persisted history file.
func (c *Configuration) HistoryPath() string {
	return filepath.Join(c.configDir, c.HistoryFile)
}

// OpenHistory opens the history file for appending, creating it if absent.
func (c *Configuration) OpenHistory() (afero.File, error) {
	return c.fs().OpenFile(c.HistoryPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadHistory opens the history file for reading.
func (c *Configuration) ReadHistory() (afero.File, error) {
	return c.fs().Open(c.HistoryPath())
}

// Default returns the embedded default configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
