// Package config provides YAML-based game configuration loading and
// startup validation for boxfield.
package config

import "fmt"

// BoxfieldConfig contains all configuration for the boxfield game.
type BoxfieldConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Colors    ColorConfig    `yaml:"colors"`
}

// WorldConfig defines the rectangular world the box moves in, in world
// units (one unit per screen cell).
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the movable box.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"` // Distance moved per directional input
}

// ObstacleConfig defines the static obstacle field generated at spawn.
type ObstacleConfig struct {
	Count     int `yaml:"count"`
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
}

// ColorConfig names the render colors; values are the names understood by
// core.ParseColor.
type ColorConfig struct {
	Fill     string `yaml:"fill"`     // Player box interior
	Stroke   string `yaml:"stroke"`   // Player box border
	Obstacle string `yaml:"obstacle"` // Obstacle blocks
	Border   string `yaml:"border"`   // World boundary
}

// Validate rejects misconfiguration at startup. Clamping makes every move
// total at runtime, so a broken clamp ceiling (non-positive world, step or
// player size, or a player larger than the world) must never get that far.
func (c BoxfieldConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %gx%g",
			c.World.Width, c.World.Height)
	}
	if c.Player.Step <= 0 {
		return fmt.Errorf("config: player step must be positive, got %g", c.Player.Step)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player size must be positive, got %gx%g",
			c.Player.Width, c.Player.Height)
	}
	if c.Player.Width > c.World.Width || c.Player.Height > c.World.Height {
		return fmt.Errorf("config: player %gx%g does not fit world %gx%g",
			c.Player.Width, c.Player.Height, c.World.Width, c.World.Height)
	}
	if c.Obstacles.Count < 0 {
		return fmt.Errorf("config: obstacle count must not be negative, got %d", c.Obstacles.Count)
	}
	if c.Obstacles.Count > 0 {
		if c.Obstacles.MinWidth <= 0 || c.Obstacles.MinHeight <= 0 {
			return fmt.Errorf("config: obstacle minimum size must be positive, got %dx%d",
				c.Obstacles.MinWidth, c.Obstacles.MinHeight)
		}
		if c.Obstacles.MaxWidth < c.Obstacles.MinWidth || c.Obstacles.MaxHeight < c.Obstacles.MinHeight {
			return fmt.Errorf("config: obstacle maximum size %dx%d below minimum %dx%d",
				c.Obstacles.MaxWidth, c.Obstacles.MaxHeight,
				c.Obstacles.MinWidth, c.Obstacles.MinHeight)
		}
	}
	return nil
}
