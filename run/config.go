// SPDX-License-Identifier: MIT

package run

import (
	"path/filepath"
	"strings"
	"time"
)

// Config is one fully resolved run configuration. The loader resolves
// defaults and per-run overrides before handing it over; the driver treats
// it as immutable.
type Config struct {
	// Name labels the run in logs and the report. May contain the
	// placeholders $graph, $model, and $ts before resolution.
	Name string `yaml:"name" validate:"required"`

	// Graph is the path of the graph file (edge list or GML).
	Graph string `yaml:"graph" validate:"required"`

	// Model selects the formulation family.
	Model string `yaml:"model" validate:"oneof=natural extended"`

	// LBMethod and UBMethod select the bound estimators.
	LBMethod string `yaml:"lb_method" validate:"oneof=match lovasz clique independent_edges maximal_independent_set"`
	UBMethod string `yaml:"ub_method" validate:"oneof=number vertex merge_stars"`

	// EdgeFix pins the candidate prefix onto the conflicting-edge witness.
	// Takes precedence over WarmStart: a heuristic cover is generally not
	// aligned with the witness orientation, so only one of the two is
	// injected.
	EdgeFix bool `yaml:"edge_fix"`

	// WarmStart injects the upper-bound cover as the initial incumbent.
	WarmStart bool `yaml:"warm_start"`

	// ConflictInequalities adds the static pairwise conflict rows.
	ConflictInequalities bool `yaml:"conflict_inequalities"`

	// CommonNeighborInequalities adds the triangle rows (Extended only).
	CommonNeighborInequalities bool `yaml:"common_neighbor_inequalities"`

	// UseCallback omits the validity rows upfront and separates them lazily.
	UseCallback bool `yaml:"use_callback"`

	// TimeLimit is the solver budget in seconds.
	TimeLimit float64 `yaml:"time_limit" validate:"gt=0"`

	// MaxCandidates caps the candidate budget; 0 means the certified upper
	// bound. A cap below bc(g) makes the model infeasible.
	MaxCandidates int `yaml:"max_candidates" validate:"gte=0"`
}

// timeLimit converts the configured seconds into a Duration.
func (c Config) timeLimit() time.Duration {
	return time.Duration(c.TimeLimit * float64(time.Second))
}

// WithResolvedName substitutes the $graph, $model, and $ts placeholders in
// the run name. $graph becomes the graph file's base name without extension,
// $ts the given instant as yyyymmdd-hhmmss. Only the name is textual; no
// other field is substituted.
func (c Config) WithResolvedName(now time.Time) Config {
	base := filepath.Base(c.Graph)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	name := c.Name
	name = strings.ReplaceAll(name, "$graph", base)
	name = strings.ReplaceAll(name, "$model", c.Model)
	name = strings.ReplaceAll(name, "$ts", now.Format("20060102-150405"))
	c.Name = name

	return c
}
