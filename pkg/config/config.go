// Package config defines the generation configuration and its YAML loader.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Timwi/KtaneVoronoiMaze/pkg/validation"
)

// Config is the top-level generation configuration.
type Config struct {
	Sites         int          `yaml:"sites" json:"sites"`
	Trials        int          `yaml:"trials" json:"trials"`
	Bounds        BoundsDef    `yaml:"bounds" json:"bounds"`
	IncludeBorder bool         `yaml:"include_border" json:"include_border"`
	MinSeparation float64      `yaml:"min_separation" json:"min_separation"`
	Exclusion     ExclusionDef `yaml:"exclusion" json:"exclusion"`
	Labels        LabelsDef    `yaml:"labels" json:"labels"`
	Waypoints     WaypointsDef `yaml:"waypoints" json:"waypoints"`
	Seed          int64        `yaml:"seed" json:"seed"`
}

// BoundsDef is the bounding rectangle passed to the subdivision generator.
type BoundsDef struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// ExclusionDef keeps boundary edges away from a fixed anchor point, e.g. an
// on-screen information display. Radius 0 disables the check.
type ExclusionDef struct {
	AnchorX float64 `yaml:"anchor_x" json:"anchor_x"`
	AnchorY float64 `yaml:"anchor_y" json:"anchor_y"`
	Radius  float64 `yaml:"radius" json:"radius"`
}

// LabelsDef controls per-site label placement. Clearance 0 disables the
// stricter layout variant that keeps edges away from label anchors.
type LabelsDef struct {
	Clearance float64 `yaml:"clearance" json:"clearance"`
	Precision float64 `yaml:"precision" json:"precision"`
}

// WaypointsDef controls waypoint placement.
type WaypointsDef struct {
	Count       int `yaml:"count" json:"count"`
	MinDistance int `yaml:"min_distance" json:"min_distance"`
	RetryBudget int `yaml:"retry_budget" json:"retry_budget"`
}

// Default returns the configuration used when a field is omitted.
func Default() Config {
	return Config{
		Sites:         12,
		Trials:        10,
		Bounds:        BoundsDef{Width: 1, Height: 1},
		IncludeBorder: true,
		MinSeparation: 0.1,
		Labels:        LabelsDef{Precision: 0.0001},
		Waypoints:     WaypointsDef{Count: 4, MinDistance: 3, RetryBudget: 10},
	}
}

// Load reads a configuration from a YAML file, applying defaults for
// omitted fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return &cfg, nil
}

// LoadProject loads a configuration from a project directory. It looks for
// maze.yaml in the given directory.
func LoadProject(projectDir string) (*Config, error) {
	return Load(filepath.Join(projectDir, "maze.yaml"))
}

// Validate checks the configuration and returns a report.
func (c *Config) Validate() *validation.Report {
	report := validation.NewReport()

	if c.Sites < 2 {
		report.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     "at least 2 sites are required",
			ConfigPath:  "sites",
			ActualValue: c.Sites,
		})
	}
	if c.Trials < 1 {
		report.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     "at least 1 layout trial is required",
			ConfigPath:  "trials",
			ActualValue: c.Trials,
		})
	}
	if c.Bounds.Width <= 0 || c.Bounds.Height <= 0 {
		report.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     "bounds must have positive width and height",
			ConfigPath:  "bounds",
			ActualValue: c.Bounds,
		})
	}
	if c.MinSeparation < 0 {
		report.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     "min_separation must not be negative",
			ConfigPath:  "min_separation",
			ActualValue: c.MinSeparation,
		})
	}
	if c.Waypoints.Count < 1 {
		report.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     "at least 1 waypoint is required",
			ConfigPath:  "waypoints.count",
			ActualValue: c.Waypoints.Count,
		})
	}
	if c.Waypoints.Count > c.Sites {
		report.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     "waypoint count cannot exceed site count",
			ConfigPath:  "waypoints.count",
			ActualValue: c.Waypoints.Count,
			Expected:    fmt.Sprintf("<= %d", c.Sites),
		})
	}
	if c.Waypoints.MinDistance < 1 {
		report.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     "waypoints.min_distance must be at least 1",
			ConfigPath:  "waypoints.min_distance",
			ActualValue: c.Waypoints.MinDistance,
		})
	}
	if c.Waypoints.RetryBudget < 0 {
		report.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     "waypoints.retry_budget must not be negative",
			ConfigPath:  "waypoints.retry_budget",
			ActualValue: c.Waypoints.RetryBudget,
		})
	}

	// Dense site counts with a large separation may never finish sampling.
	if c.MinSeparation > 0 && c.Sites > 0 {
		areaPerSite := c.Bounds.Width * c.Bounds.Height / float64(c.Sites)
		if c.MinSeparation*c.MinSeparation > areaPerSite {
			report.AddWarning(validation.Result{
				Level:       validation.LevelConfig,
				Message:     "min_separation may be too large for the requested site count",
				ConfigPath:  "min_separation",
				ActualValue: c.MinSeparation,
				Suggestions: []string{
					"lower min_separation",
					"reduce sites",
					"enlarge bounds",
				},
			})
		}
	}

	return report
}
