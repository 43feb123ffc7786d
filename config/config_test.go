package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/config"
	"github.com/katalvlaran/gridroute/route"
)

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil, "empty.hcl", nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(config.Default(), cfg))
}

func TestParse_AllBlocks(t *testing.T) {
	src := `
mode  = "shortcuts"
input = "track.txt"

cost {
  step = 2
  turn = 10
}

search {
  key_mode = "position"
}

enumerate {
  workers           = 4
  min_branch_degree = 2
  start_branching   = false
}

shortcuts {
  max_jump  = 2
  min_saved = 50
  workers   = 3
}

bytes {
  size   = 7
  fallen = 12
}

logging {
  level  = "debug"
  format = "json"
}
`
	cfg, err := config.Parse([]byte(src), "all.hcl", nil)
	require.NoError(t, err)

	want := &config.Config{
		Mode:      config.ModeShortcuts,
		Input:     "track.txt",
		Cost:      route.CostModel{Step: 2, Turn: 10},
		KeyMode:   route.KeyByPosition,
		Enumerate: config.Enumerate{Workers: 4, MinBranchDegree: 2, StartBranching: false},
		Shortcuts: config.Shortcuts{MaxJump: 2, MinSaved: 50, Workers: 3},
		Bytes:     config.Bytes{Size: 7, Fallen: 12},
		Logging:   config.Logging{Level: "debug", Format: "json"},
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParse_PartialBlockKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("cost {\n  turn = 0\n}\n"), "partial.hcl", nil)
	require.NoError(t, err)
	assert.Equal(t, route.CostModel{Step: 1, Turn: 0}, cfg.Cost)
	assert.Equal(t, 3, cfg.Enumerate.MinBranchDegree)
	assert.True(t, cfg.Enumerate.StartBranching)
}

func TestParse_Variables(t *testing.T) {
	src := `
variable "workers" {
  default = 2
}

variable "turn" {}

cost {
  turn = var.turn
}

enumerate {
  workers = var.workers
}
`
	cfg, err := config.Parse([]byte(src), "vars.hcl", map[string]string{"turn": "500"})
	require.NoError(t, err)
	assert.Equal(t, int64(500), cfg.Cost.Turn)
	assert.Equal(t, 2, cfg.Enumerate.Workers, "declared default")

	cfg, err = config.Parse([]byte(src), "vars.hcl", map[string]string{"turn": "500", "workers": "8"})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Enumerate.Workers, "override wins over default")

	_, err = config.Parse([]byte(src), "vars.hcl", nil)
	assert.Error(t, err, "var.turn has no value")
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		invalid bool
	}{
		{"syntax", "cost {", false},
		{"unknown block", "route {}\n", false},
		{"unknown attribute", "speed = 3\n", false},
		{"wrong type", "cost {\n  step = \"fast\"\n}\n", false},
		{"mode", "mode = \"race\"\n", true},
		{"step", "cost {\n  step = 0\n}\n", true},
		{"turn", "cost {\n  turn = -1\n}\n", true},
		{"turn overflow", "cost {\n  turn = 9223372036854775807\n}\n", true},
		{"key mode", "search {\n  key_mode = \"cell\"\n}\n", true},
		{"degree", "enumerate {\n  min_branch_degree = 1\n}\n", true},
		{"workers", "shortcuts {\n  workers = -1\n}\n", true},
		{"bytes", "bytes {\n  size = 0\n}\n", true},
		{"level", "logging {\n  level = \"loud\"\n}\n", true},
		{"format", "logging {\n  format = \"xml\"\n}\n", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.src), tc.name+".hcl", nil)
			require.Error(t, err)
			if tc.invalid {
				assert.ErrorIs(t, err, config.ErrInvalid)
			} else {
				assert.NotErrorIs(t, err, config.ErrInvalid)
			}
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Cost.Step = 0
	cfg.Bytes.Size = 0
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, route.ErrBadCostModel)
	assert.Contains(t, err.Error(), "cost:")
	assert.Contains(t, err.Error(), "bytes.size")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte("mode = \"bytes\"\n"), 0o600))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.ModeBytes, cfg.Mode)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.hcl"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseKeyMode(t *testing.T) {
	m, err := config.ParseKeyMode("STATE")
	require.NoError(t, err)
	assert.Equal(t, route.KeyByState, m)

	m, err = config.ParseKeyMode("position")
	require.NoError(t, err)
	assert.Equal(t, route.KeyByPosition, m)

	_, err = config.ParseKeyMode("")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
