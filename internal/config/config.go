// Package config provides YAML-based configuration loading for Walk the Dog.
package config

import (
	"errors"
	"fmt"
)

// Obstacle kinds used in segment layouts.
const (
	KindStone    = "stone"
	KindPlatform = "platform"
)

// WalkConfig contains all configuration for the game.
type WalkConfig struct {
	Physics   WalkPhysics   `yaml:"physics"`
	Frames    WalkFrames    `yaml:"frames"`
	Character WalkCharacter `yaml:"character"`
	Segments  WalkSegments  `yaml:"segments"`
	Viewport  WalkViewport  `yaml:"viewport"`
	Assets    WalkAssets    `yaml:"assets"`
	Audio     WalkAudio     `yaml:"audio"`
	Debug     bool          `yaml:"debug"` // Draw bounding boxes
}

// WalkPhysics defines the character's physics in world pixels per tick.
type WalkPhysics struct {
	Height           int `yaml:"height"`
	Floor            int `yaml:"floor"`
	Gravity          int `yaml:"gravity"`
	TerminalVelocity int `yaml:"terminal_velocity"`
	StartingPoint    int `yaml:"starting_point"`
	RunningSpeed     int `yaml:"running_speed"`
	JumpSpeed        int `yaml:"jump_speed"`
}

// WalkFrames defines the animation length of each phase, in ticks.
type WalkFrames struct {
	Idle    int `yaml:"idle"`
	Running int `yaml:"running"`
	Sliding int `yaml:"sliding"`
	Jumping int `yaml:"jumping"`
	Falling int `yaml:"falling"`
}

// WalkCharacter defines how the collision box is derived from the sprite.
type WalkCharacter struct {
	BoxInset Inset `yaml:"box_inset"`
}

// Inset shrinks a destination box into a bounding box.
type Inset struct {
	X      int `yaml:"x"`      // Added to x
	Y      int `yaml:"y"`      // Added to y
	Width  int `yaml:"width"`  // Subtracted from width
	Height int `yaml:"height"` // Subtracted from height
}

// WalkSegments defines procedural terrain generation.
type WalkSegments struct {
	TimelineMinimum int           `yaml:"timeline_minimum"` // Generate while the timeline is below this
	ObstacleBuffer  int           `yaml:"obstacle_buffer"`  // Gap between consecutive segments
	Starting        string        `yaml:"starting"`         // Layout placed at offset 0 on every new game
	Platform        PlatformShape `yaml:"platform"`
	Layouts         []Layout      `yaml:"layouts"`
}

// PlatformShape describes the sprites and collision boxes of a platform.
type PlatformShape struct {
	Sprites []string `yaml:"sprites"`
	Boxes   []Box    `yaml:"boxes"`
}

// Box is a rectangle relative to its owner's position.
type Box struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Layout is a named, fixed arrangement of obstacles.
type Layout struct {
	Name      string      `yaml:"name"`
	Obstacles []Placement `yaml:"obstacles"`
}

// Placement positions one obstacle relative to the segment offset.
type Placement struct {
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// WalkViewport is the logical world size drawn each frame.
type WalkViewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WalkAssets names the files the game loads.
type WalkAssets struct {
	CharacterSheet string `yaml:"character_sheet"`
	CharacterImage string `yaml:"character_image"`
	TileSheet      string `yaml:"tile_sheet"`
	TileImage      string `yaml:"tile_image"`
	Background     string `yaml:"background"`
	Stone          string `yaml:"stone"`
	JumpSound      string `yaml:"jump_sound"`
	Music          string `yaml:"music"`
}

// WalkAudio controls playback.
type WalkAudio struct {
	Volume float64 `yaml:"volume"`
	Mute   bool    `yaml:"mute"`
}

// Layout returns the layout with the given name.
func (s WalkSegments) Layout(name string) (Layout, bool) {
	for _, l := range s.Layouts {
		if l.Name == name {
			return l, true
		}
	}
	return Layout{}, false
}

// Validate reports every impossible value in the configuration.
func (c WalkConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := c.Physics
	check(p.Height > 0, "physics.height must be positive")
	check(p.Floor > 0 && p.Floor < p.Height, "physics.floor must be between 0 and height")
	check(p.Gravity > 0, "physics.gravity must be positive")
	check(p.TerminalVelocity > 0, "physics.terminal_velocity must be positive")
	check(p.RunningSpeed > 0, "physics.running_speed must be positive")
	check(p.JumpSpeed < 0, "physics.jump_speed must be negative")

	f := c.Frames
	check(f.Idle > 0 && f.Running > 0 && f.Sliding > 0 && f.Jumping > 0 && f.Falling > 0,
		"frames must all be positive")

	in := c.Character.BoxInset
	check(in.X >= 0 && in.Y >= 0 && in.Width >= 0 && in.Height >= 0,
		"character.box_inset must not be negative")

	s := c.Segments
	check(s.TimelineMinimum > 0, "segments.timeline_minimum must be positive")
	check(s.ObstacleBuffer >= 0, "segments.obstacle_buffer must not be negative")
	check(len(s.Platform.Sprites) > 0, "segments.platform.sprites must not be empty")
	check(len(s.Platform.Boxes) > 0, "segments.platform.boxes must not be empty")
	check(len(s.Layouts) > 0, "segments.layouts must not be empty")
	for i, l := range s.Layouts {
		check(l.Name != "", "segments.layouts[%d] has no name", i)
		check(len(l.Obstacles) > 0, "segments.layouts[%d] (%s) has no obstacles", i, l.Name)
		for _, o := range l.Obstacles {
			check(o.Kind == KindStone || o.Kind == KindPlatform,
				"segments.layouts[%d] (%s): unknown obstacle kind %q", i, l.Name, o.Kind)
			check(o.X >= 0, "segments.layouts[%d] (%s): obstacle x must not be negative", i, l.Name)
		}
	}
	if _, ok := s.Layout(s.Starting); !ok {
		errs = append(errs, fmt.Errorf("segments.starting: unknown layout %q", s.Starting))
	}

	check(c.Viewport.Width > 0 && c.Viewport.Height > 0, "viewport must have positive size")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be between 0 and 1")

	a := c.Assets
	check(a.CharacterSheet != "" && a.CharacterImage != "" && a.TileSheet != "" &&
		a.TileImage != "" && a.Background != "" && a.Stone != "" &&
		a.JumpSound != "" && a.Music != "", "assets must name every file")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
