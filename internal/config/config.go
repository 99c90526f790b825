package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Wheel of Fortune"

	// Wheel geometry
	WheelRadius  = 250
	WheelCenterX = 300
	WheelCenterY = 340
	HubRadius    = WheelRadius * 0.2
	LabelRadius  = WheelRadius * 0.8
	ArcSteps     = 24 // triangles per segment edge

	// Pointer (triangle above the wheel, tip pointing down)
	PointerHalfWidth = 15
	PointerHeight    = 30

	// Button dimensions
	ButtonWidth  = 220
	ButtonHeight = 56
	ButtonX      = 660
	ButtonY      = 200

	// Result panel
	PanelX      = 600
	PanelY      = 300
	PanelWidth  = 360
	PanelHeight = 160

	// Visual parameters
	ColorShiftSpeed = 0.01
	RimGlowWidth    = 6
	TickRate        = 60

	// Audio
	SampleRate      = 44100
	AudioBufferSize = SampleRate / 20
	LevelRingSize   = 4096
)

// Timing contract between the spin and its reveal.
const (
	SettleDuration = 6000 * time.Millisecond
	BurstDuration  = 5000 * time.Millisecond
)

// Settle curve, cubic-bezier control points.
const (
	EaseX1 = 0.1
	EaseY1 = 0.7
	EaseX2 = 0.3
	EaseY2 = 1.0
)
