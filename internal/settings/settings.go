package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/textadv/internal/ctxlog"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TEXTADV_"

// DefaultFile is the settings file read when none is named explicitly.
const DefaultFile = "textadv.hcl"

// Settings are the knobs a player can turn without recompiling.
type Settings struct {
	AdventuresDir string `env:"ADVENTURES_DIR"`
	StartRoom     string `env:"START_ROOM"`
	Border        string `env:"BORDER"`
	Timestamps    bool   `env:"TIMESTAMPS"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		AdventuresDir: "adventures",
		StartRoom:     "S",
		Border:        "=",
		Timestamps:    true,
	}
}

// fileRoot is the top-level shape of a settings file.
type fileRoot struct {
	Runner *runnerBlock `hcl:"runner,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type runnerBlock struct {
	AdventuresDir *string `hcl:"adventures_dir,optional"`
	StartRoom     *string `hcl:"start_room,optional"`
	Border        *string `hcl:"border,optional"`
	Timestamps    *bool   `hcl:"timestamps,optional"`
}

// evalContext exposes the variables settings expressions may reference.
func evalContext() *hcl.EvalContext {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"home": cty.StringVal(home),
			"cwd":  cty.StringVal(cwd),
		},
	}
}

// LoadFile overlays the settings in the HCL file at path onto base. When
// optional is true a missing file leaves base unchanged.
func LoadFile(ctx context.Context, path string, base Settings, optional bool) (Settings, error) {
	logger := ctxlog.FromContext(ctx)

	if _, err := os.Stat(path); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No settings file found, using defaults.", "path", path)
			return base, nil
		}
		return base, fmt.Errorf("error accessing settings file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(), &root)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	out := base
	if r := root.Runner; r != nil {
		if r.AdventuresDir != nil {
			out.AdventuresDir = *r.AdventuresDir
		}
		if r.StartRoom != nil {
			out.StartRoom = *r.StartRoom
		}
		if r.Border != nil {
			out.Border = *r.Border
		}
		if r.Timestamps != nil {
			out.Timestamps = *r.Timestamps
		}
	}

	logger.Debug("Settings file loaded.", "path", path, "settings", out)
	return out, nil
}

// ApplyEnv overlays TEXTADV_* variables from environ onto base. A nil
// environ reads the process environment.
func ApplyEnv(base Settings, environ map[string]string) (Settings, error) {
	out := base
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&out, opts); err != nil {
		return base, fmt.Errorf("parse env: %w", err)
	}
	return out, nil
}
