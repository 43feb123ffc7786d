// Package config loads the run configuration of the gridroute command from an
// HCL file.
//
// Example file:
//
//	mode  = "maze"
//	input = "maze.txt"
//
//	cost {
//	  step = 1
//	  turn = var.turn
//	}
//
//	enumerate {
//	  workers = 4
//	}
//
//	logging {
//	  level = "debug"
//	}
//
// Every block and attribute is optional; missing values keep their defaults.
// Expressions may refer to var.<name>, filled from the vars map given to Load.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/gridroute/route"
)

// Run modes.
const (
	ModeMaze      = "maze"
	ModeShortcuts = "shortcuts"
	ModeBytes     = "bytes"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved run configuration.
type Config struct {
	Mode  string
	Input string

	Cost    route.CostModel
	KeyMode route.KeyMode

	Enumerate Enumerate
	Shortcuts Shortcuts
	Bytes     Bytes
	Logging   Logging
}

// Enumerate configures the optimal route enumeration.
type Enumerate struct {
	Workers         int
	MinBranchDegree int
	StartBranching  bool
}

// Shortcuts configures the shortcut scan.
type Shortcuts struct {
	MaxJump  int
	MinSaved int
	Workers  int
}

// Bytes configures the falling-bytes run.
type Bytes struct {
	Size   int
	Fallen int
}

// Logging selects the log level and handler format.
type Logging struct {
	Level  string
	Format string
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Mode:    ModeMaze,
		Cost:    route.DefaultCostModel(),
		KeyMode: route.KeyByState,
		Enumerate: Enumerate{
			MinBranchDegree: 3,
			StartBranching:  true,
		},
		Shortcuts: Shortcuts{MaxJump: 20, MinSaved: 100},
		Bytes:     Bytes{Size: 71, Fallen: 1024},
		Logging:   Logging{Level: "info", Format: "text"},
	}
}

// hclFile mirrors the file layout for gohcl. Pointers mark optional values so
// that absent ones keep their defaults.
type hclFile struct {
	Mode      *string        `hcl:"mode,optional"`
	Input     *string        `hcl:"input,optional"`
	Cost      *hclCost       `hcl:"cost,block"`
	Search    *hclSearch     `hcl:"search,block"`
	Enumerate *hclEnumerate  `hcl:"enumerate,block"`
	Shortcuts *hclShortcuts  `hcl:"shortcuts,block"`
	Bytes     *hclBytes      `hcl:"bytes,block"`
	Logging   *hclLogging    `hcl:"logging,block"`
	Variables []*hclVariable `hcl:"variable,block"`
}

type hclCost struct {
	Step *int64 `hcl:"step,optional"`
	Turn *int64 `hcl:"turn,optional"`
}

type hclSearch struct {
	KeyMode *string `hcl:"key_mode,optional"`
}

type hclEnumerate struct {
	Workers         *int  `hcl:"workers,optional"`
	MinBranchDegree *int  `hcl:"min_branch_degree,optional"`
	StartBranching  *bool `hcl:"start_branching,optional"`
}

type hclShortcuts struct {
	MaxJump  *int `hcl:"max_jump,optional"`
	MinSaved *int `hcl:"min_saved,optional"`
	Workers  *int `hcl:"workers,optional"`
}

type hclBytes struct {
	Size   *int `hcl:"size,optional"`
	Fallen *int `hcl:"fallen,optional"`
}

type hclLogging struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// hclVariable declares a var.<name> with an optional default.
type hclVariable struct {
	Name    string     `hcl:"name,label"`
	Default *cty.Value `hcl:"default,optional"`
}

// Load reads and decodes the HCL file at path. vars supply or override
// var.<name> values.
func Load(path string, vars map[string]string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(src, path, vars)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string, vars map[string]string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %s", filename, diags.Error())
	}

	// Variable blocks are decoded first so their defaults can feed the
	// evaluation context of the rest of the file.
	var declared struct {
		Variables []*hclVariable `hcl:"variable,block"`
		Remain    hcl.Body       `hcl:",remain"`
	}
	if diags := gohcl.DecodeBody(file.Body, nil, &declared); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode variables in %s: %s", filename, diags.Error())
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(declared.Variables, vars), &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %s", filename, diags.Error())
	}

	cfg := Default()
	if err := raw.apply(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func evalContext(declared []*hclVariable, vars map[string]string) *hcl.EvalContext {
	values := make(map[string]cty.Value, len(declared)+len(vars))
	for _, v := range declared {
		if v.Default != nil {
			values[v.Name] = *v.Default
		}
	}
	for k, v := range vars {
		values[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(values)},
	}
}

func (f *hclFile) apply(cfg *Config) error {
	set(&cfg.Mode, f.Mode)
	set(&cfg.Input, f.Input)
	if c := f.Cost; c != nil {
		set(&cfg.Cost.Step, c.Step)
		set(&cfg.Cost.Turn, c.Turn)
	}
	if s := f.Search; s != nil && s.KeyMode != nil {
		mode, err := ParseKeyMode(*s.KeyMode)
		if err != nil {
			return err
		}
		cfg.KeyMode = mode
	}
	if e := f.Enumerate; e != nil {
		set(&cfg.Enumerate.Workers, e.Workers)
		set(&cfg.Enumerate.MinBranchDegree, e.MinBranchDegree)
		set(&cfg.Enumerate.StartBranching, e.StartBranching)
	}
	if s := f.Shortcuts; s != nil {
		set(&cfg.Shortcuts.MaxJump, s.MaxJump)
		set(&cfg.Shortcuts.MinSaved, s.MinSaved)
		set(&cfg.Shortcuts.Workers, s.Workers)
	}
	if b := f.Bytes; b != nil {
		set(&cfg.Bytes.Size, b.Size)
		set(&cfg.Bytes.Fallen, b.Fallen)
	}
	if l := f.Logging; l != nil {
		set(&cfg.Logging.Level, l.Level)
		set(&cfg.Logging.Format, l.Format)
	}
	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// ParseKeyMode maps "state" and "position" to route key modes.
func ParseKeyMode(s string) (route.KeyMode, error) {
	switch strings.ToLower(s) {
	case "state":
		return route.KeyByState, nil
	case "position":
		return route.KeyByPosition, nil
	}
	return 0, fmt.Errorf("%w: key_mode %q, want \"state\" or \"position\"", ErrInvalid, s)
}

// Validate checks every field against its allowed range.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	switch c.Mode {
	case ModeMaze, ModeShortcuts, ModeBytes:
	default:
		check(false, "mode %q", c.Mode)
	}
	if err := c.Cost.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: cost: %w", ErrInvalid, err))
	}
	check(c.Enumerate.Workers >= 0, "enumerate.workers %d < 0", c.Enumerate.Workers)
	check(c.Enumerate.MinBranchDegree >= 2, "enumerate.min_branch_degree %d < 2", c.Enumerate.MinBranchDegree)
	check(c.Shortcuts.MaxJump >= 1, "shortcuts.max_jump %d < 1", c.Shortcuts.MaxJump)
	check(c.Shortcuts.MinSaved >= 1, "shortcuts.min_saved %d < 1", c.Shortcuts.MinSaved)
	check(c.Shortcuts.Workers >= 0, "shortcuts.workers %d < 0", c.Shortcuts.Workers)
	check(c.Bytes.Size >= 1, "bytes.size %d < 1", c.Bytes.Size)
	check(c.Bytes.Fallen >= 0, "bytes.fallen %d < 0", c.Bytes.Fallen)
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		check(false, "logging.level %q", c.Logging.Level)
	}
	check(c.Logging.Format == "text" || c.Logging.Format == "json", "logging.format %q", c.Logging.Format)

	return errors.Join(errs...)
}
