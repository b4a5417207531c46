package config

import (
	_ "embed"
)

//go:embed defaults/walk.yaml
var defaultWalkYAML []byte

// DefaultWalkConfig returns the built-in configuration. It matches
// defaults/walk.yaml and is used when no YAML can be read.
func DefaultWalkConfig() WalkConfig {
	return WalkConfig{
		Physics: WalkPhysics{
			Height:           600,
			Floor:            479,
			Gravity:          1,
			TerminalVelocity: 20,
			StartingPoint:    -20,
			RunningSpeed:     4,
			JumpSpeed:        -25,
		},
		Frames: WalkFrames{
			Idle:    29,
			Running: 23,
			Sliding: 14,
			Jumping: 35,
			Falling: 29,
		},
		Character: WalkCharacter{
			BoxInset: Inset{X: 18, Y: 14, Width: 28, Height: 14},
		},
		Segments: WalkSegments{
			TimelineMinimum: 1000,
			ObstacleBuffer:  20,
			Starting:        "stone_and_platform",
			Platform: PlatformShape{
				Sprites: []string{"13.png", "14.png", "15.png"},
				Boxes: []Box{
					{X: 0, Y: 0, Width: 60, Height: 54},
					{X: 60, Y: 0, Width: 384 - 60*2, Height: 93},
					{X: 384 - 60, Y: 0, Width: 60, Height: 54},
				},
			},
			Layouts: []Layout{
				{
					Name: "stone_and_platform",
					Obstacles: []Placement{
						{Kind: KindStone, X: 150, Y: 546},
						{Kind: KindPlatform, X: 370, Y: 420},
					},
				},
				{
					Name: "platform_and_stone",
					Obstacles: []Placement{
						{Kind: KindPlatform, X: 200, Y: 375},
						{Kind: KindStone, X: 400, Y: 546},
					},
				},
			},
		},
		Viewport: WalkViewport{Width: 600, Height: 600},
		Assets: WalkAssets{
			CharacterSheet: "rhb.json",
			CharacterImage: "rhb.png",
			TileSheet:      "tiles.json",
			TileImage:      "tiles.png",
			Background:     "BG.png",
			Stone:          "Stone.png",
			JumpSound:      "SFX_Jump_23.mp3",
			Music:          "background_song.mp3",
		},
		Audio: WalkAudio{Volume: 1},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWalkYAML
}
