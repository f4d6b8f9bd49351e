// Copyright 2024 Qian Yao
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"embed"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/Adamkhalifa2/linked-list/internal/utils"

	syslocale "github.com/jeandeaual/go-locale"
	"github.com/pkg/errors"
	"github.com/vimiix/pkg/file"
	"github.com/xo/terminfo"
	"gopkg.in/ini.v1"
)

//go:embed defaultconfig.ini
var defaultConfigFile embed.FS

const AppName = "chainlist"

var defaultConfig *Config

const defaultPrompt = "chainlist[$n]"

func Get() *Config {
	if defaultConfig == nil {
		defaultConfig = newDefault()
	}
	return defaultConfig
}

type Config struct {
	Prompt      string `ini:"prompt,omitempty"`
	LessChatty  bool   `ini:"less_chatty,omitempty"`
	MaxHistory  int    `ini:"max_history,omitempty"`
	LogLevel    string `ini:"log_level,omitempty"`
	Silence     bool   `ini:"silence,omitempty"`
	OnErrorStop bool   `ini:"on_error_stop,omitempty"`

	// auto detected fields
	Color  bool   `ini:"-"`
	Locale string `ini:"-"`

	Display `ini:"display"`
}

func GetConfigMap() map[string]string {
	c := Get()
	return map[string]string{
		"prompt":        c.Prompt,
		"less_chatty":   strconv.FormatBool(c.LessChatty),
		"max_history":   strconv.Itoa(c.MaxHistory),
		"log_level":     c.LogLevel,
		"silence":       strconv.FormatBool(c.Silence),
		"on_error_stop": strconv.FormatBool(c.OnErrorStop),
		"separator":     c.Separator,
		"empty_message": c.EmptyMessage,
		"format":        c.Format,
	}
}

// ExpandPrompt replaces $x macros in the prompt with macros[x]. "$$" is a
// literal dollar sign; unknown macros expand to nothing.
func (c *Config) ExpandPrompt(macros map[rune]string) string {
	if c.Prompt == "" {
		c.Prompt = defaultPrompt
	}

	rs := []rune(c.Prompt)
	var buf []rune
	end := len(rs)
	for i := 0; i < end; i++ {
		if rs[i] != '$' {
			buf = append(buf, rs[i])
			continue
		}
		switch r := utils.Grab(rs, i+1, end); r {
		case '$':
			buf = append(buf, '$')
		case 0:
			buf = append(buf, '$')
		default:
			buf = append(buf, []rune(macros[r])...)
		}
		i++
	}
	return string(buf)
}

// PrintParams returns the tblfmt settings used for table output.
func (c *Config) PrintParams() map[string]string {
	return map[string]string{
		"border":    "1",
		"format":    "aligned",
		"footer":    "on",
		"linestyle": "ascii",
		"locale":    c.Locale,
		"null":      "",
	}
}

// Init loads the config file from DefaultLocation, writing the embedded
// defaults there first if it does not exist yet.
func Init() error {
	cfgFile := filepath.Join(DefaultLocation(), "config")
	if err := writeDefaultConfig(cfgFile, false); err != nil {
		return errors.Wrapf(err, "write default config: %s", cfgFile)
	}
	return Load(cfgFile)
}

// Load replaces the current config with defaults overlaid by path.
func Load(path string) error {
	cfg := newDefault()
	if err := ini.MapTo(cfg, path); err != nil {
		return errors.Wrapf(err, "load config: %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrapf(err, "load config: %s", path)
	}
	defaultConfig = cfg
	return nil
}

func (c *Config) Validate() error {
	if c.MaxHistory < 0 {
		return errors.Errorf("max_history must not be negative, got %d", c.MaxHistory)
	}
	return c.Display.Validate()
}

func newDefault() *Config {
	noColor := false
	if s, ok := utils.Getenv("NO_COLOR"); ok {
		noColor = s != "0" && s != "false" && s != "off"
	}
	colorLevel, _ := terminfo.ColorLevelFromEnv()
	locale := "en-US"
	if s, err := syslocale.GetLocale(); err == nil && s != "" {
		locale = s
	}
	return &Config{
		Prompt:     defaultPrompt,
		MaxHistory: 1000,
		LogLevel:   "info",
		Color:      !noColor && colorLevel >= terminfo.ColorLevelBasic,
		Locale:     locale,
		Display: Display{
			Separator:    DefaultSeparator,
			EmptyMessage: DefaultEmptyMessage,
			Format:       FormatChain,
		},
	}
}

// DefaultLocation returns the directory holding the config and history
// files: $XDG_CONFIG_HOME/chainlist/ when set, otherwise
// ~/.config/chainlist/ on Unix systems and %USERPROFILE%\AppData\Local\chainlist\
// on Windows.
func DefaultLocation() string {
	if os.Getenv("XDG_CONFIG_HOME") != "" {
		return filepath.Join(file.ExpandHomePath(os.Getenv("XDG_CONFIG_HOME")), AppName) + string(filepath.Separator)
	}
	if runtime.GOOS == "windows" {
		return os.Getenv("USERPROFILE") + "\\AppData\\Local\\" + AppName + "\\"
	}
	return file.ExpandHomePath("~/.config/" + AppName + "/")
}

func writeDefaultConfig(dest string, overwrite bool) error {
	dest = file.ExpandHomePath(dest)
	if !overwrite && file.Exists(dest) {
		return nil
	}

	if err := file.EnsureDirExists(dest); err != nil {
		return err
	}

	src, err := defaultConfigFile.Open("defaultconfig.ini")
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
