// SPDX-License-Identifier: MIT

package bcio

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bicover/run"
)

// document is the raw shape of a run-configuration file. Defaults and runs
// are kept as nodes so that per-run decoding overrides only the fields a
// run actually sets.
type document struct {
	Defaults yaml.Node   `yaml:"defaults"`
	Runs     []yaml.Node `yaml:"runs"`
}

// baseConfig carries the built-in defaults, below the file's defaults block.
func baseConfig() run.Config {
	return run.Config{
		Name:      "$graph-$model",
		Model:     "natural",
		LBMethod:  "independent_edges",
		UBMethod:  "merge_stars",
		WarmStart: true,
		TimeLimit: 3600,
	}
}

// LoadRunConfigs reads a YAML (or JSON) configuration document and returns
// the fully resolved run list in file order: built-in defaults, overridden
// by the file's defaults block, overridden by each run's own fields, name
// placeholders substituted last. Every run is validated; any failure wraps
// ErrParse.
func LoadRunConfigs(path string) ([]run.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var doc document
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if len(doc.Runs) == 0 {
		return nil, fmt.Errorf("%w: %s: no runs defined", ErrParse, path)
	}

	base := baseConfig()
	if !doc.Defaults.IsZero() {
		if err = doc.Defaults.Decode(&base); err != nil {
			return nil, fmt.Errorf("%w: %s: defaults: %v", ErrParse, path, err)
		}
	}

	validate := validator.New()
	now := time.Now()
	out := make([]run.Config, 0, len(doc.Runs))
	for i, node := range doc.Runs {
		cfg := base
		if err = node.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: run %d: %v", ErrParse, path, i, err)
		}
		if err = validate.Struct(cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: run %d: %v", ErrParse, path, i, err)
		}
		out = append(out, cfg.WithResolvedName(now))
	}

	return out, nil
}
