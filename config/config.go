package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer the orb field uses.
const Default ecs.LayerID = 0

// Config contains window-level settings for the desktop host
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	Seed   uint64 `toml:"seed"` // 0 = seed from the clock
}

// FrameConfig contains frame clock settings
type FrameConfig struct {
	MaxDelta float64 `toml:"max_delta"` // seconds; larger deltas are clamped after a stall
}

// OrbConfig contains per-orb creation ranges and motion constants
type OrbConfig struct {
	// Shape
	BaseRadius    float64 `toml:"base_radius"`
	AmpHi         float64 `toml:"amp_hi"`
	MorphSpeedMin float64 `toml:"morph_speed_min"`
	MorphSpeedMax float64 `toml:"morph_speed_max"`

	// Lissajous sway
	SwayAmpMin  [3]float64 `toml:"sway_amp_min"`
	SwayAmpMax  [3]float64 `toml:"sway_amp_max"`
	SwayFreqMin float64    `toml:"sway_freq_min"`
	SwayFreqMax float64    `toml:"sway_freq_max"`

	// Rotation, radians added per frame
	RotSpeedMin float64 `toml:"rot_speed_min"`
	RotSpeedMax float64 `toml:"rot_speed_max"`

	// Breathing
	BreathSpeedMin float64 `toml:"breath_speed_min"`
	BreathSpeedMax float64 `toml:"breath_speed_max"`
	BreathAmpMin   float64 `toml:"breath_amp_min"`
	BreathAmpMax   float64 `toml:"breath_amp_max"`

	// Pulse oscillator
	PulseFreq1Min float64 `toml:"pulse_freq1_min"`
	PulseFreq1Max float64 `toml:"pulse_freq1_max"`
	PulseFreq2Min float64 `toml:"pulse_freq2_min"`
	PulseFreq2Max float64 `toml:"pulse_freq2_max"`
	PulseMixMin   float64 `toml:"pulse_mix_min"`
	PulseMixMax   float64 `toml:"pulse_mix_max"`
	PulseAmpMin   float64 `toml:"pulse_amp_min"`
	PulseAmpMax   float64 `toml:"pulse_amp_max"`
	PulsePhase2   float64 `toml:"pulse_phase2"` // phase multiplier of the second harmonic
}

// WaveConfig contains hover ripple settings
type WaveConfig struct {
	FadeIn        float64 `toml:"fade_in"`
	FadeOut       float64 `toml:"fade_out"` // slower than FadeIn
	KillThreshold float64 `toml:"kill_threshold"`
	DormantTime   float64 `toml:"dormant_time"` // WaveTime written once the ripple dies
}

// NoiseConfig contains focused-orb noise settings
type NoiseConfig struct {
	Target float64 `toml:"target"`
	RampUp float64 `toml:"ramp_up"`
	Decay  float64 `toml:"decay"` // faster than RampUp
}

// AppearanceConfig contains hover, color and opacity smoothing
type AppearanceConfig struct {
	HoverRate       float64 `toml:"hover_rate"`
	HoverScale      float64 `toml:"hover_scale"`
	ColorRise       float64 `toml:"color_rise"`
	ColorFall       float64 `toml:"color_fall"`
	OpacityRate     float64 `toml:"opacity_rate"`
	DimmedOpacity   float64 `toml:"dimmed_opacity"`
	CoreOpacityRate float64 `toml:"core_opacity_rate"`
	CorePulseScale  float64 `toml:"core_pulse_scale"`

	// Core opacity = base + pulse*span, per theme
	CoreDarkBase   float64 `toml:"core_dark_base"`
	CoreDarkSpan   float64 `toml:"core_dark_span"`
	CoreLightBase  float64 `toml:"core_light_base"`
	CoreLightSpan  float64 `toml:"core_light_span"`
	InitialOpacity float64 `toml:"initial_opacity"`
}

// LabelConfig contains dotted label settings
type LabelConfig struct {
	FontSize     float64 `toml:"font_size"`
	DotStride    int     `toml:"dot_stride"` // sample every Nth pixel
	DotSpacing   float64 `toml:"dot_spacing"` // world units between dots
	Height       float64 `toml:"height"`      // label anchor above the orb
	DotsPerSec   float64 `toml:"dots_per_sec"`
	Delay        float64 `toml:"delay"`
	Stagger      float64 `toml:"stagger"`
	ColorRise    float64 `toml:"color_rise"`
	ColorFall    float64 `toml:"color_fall"`
	OpacityRate  float64 `toml:"opacity_rate"`
	BaseOpacity  float64 `toml:"base_opacity"`
	HoverOpacity float64 `toml:"hover_opacity"`
}

// CameraConfig contains camera pose and fly-to settings
type CameraConfig struct {
	StartPos      [3]float64 `toml:"start_pos"`
	StartTarget   [3]float64 `toml:"start_target"`
	FOV           float64    `toml:"fov"` // degrees
	Near          float64    `toml:"near"`
	Far           float64    `toml:"far"`
	FlyRate       float64    `toml:"fly_rate"`      // transition progress per second
	FocusDistance float64    `toml:"focus_distance"` // camera distance from the focused orb
	SideOffset    float64    `toml:"side_offset"`    // along camera-right; negative shifts the orb left of the panel
	Lift          float64    `toml:"lift"`
	OrbitSpeed    float64    `toml:"orbit_speed"` // radians per dragged pixel
}

// SwayConfig contains idle camera sway settings
type SwayConfig struct {
	Amp  [3]float64 `toml:"amp"`
	Freq [3]float64 `toml:"freq"`
	Rise float64    `toml:"rise"` // slower than Fall
	Fall float64    `toml:"fall"`
}

// DOFConfig contains depth of field settings
type DOFConfig struct {
	Aperture     float64 `toml:"aperture"`
	FarFocus     float64 `toml:"far_focus"`
	FocusRate    float64 `toml:"focus_rate"`
	ApertureRate float64 `toml:"aperture_rate"`
}

// IntroConfig contains the timed intro used by the desktop host
type IntroConfig struct {
	Duration float64 `toml:"duration"`
}

var C *Config
var Frame FrameConfig
var Orb OrbConfig
var Wave WaveConfig
var Noise NoiseConfig
var Appearance AppearanceConfig
var Label LabelConfig
var Camera CameraConfig
var Sway SwayConfig
var DOF DOFConfig
var Intro IntroConfig

func init() {
	Reset()
}

// Reset restores every tuning value to its compiled-in default.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Donny Vo | Portfolio",
	}

	Frame = FrameConfig{
		MaxDelta: 0.05,
	}

	Orb = OrbConfig{
		BaseRadius:    1.6,
		AmpHi:         0.35,
		MorphSpeedMin: 0.08,
		MorphSpeedMax: 0.18,

		SwayAmpMin:  [3]float64{0.25, 0.25, 0.15},
		SwayAmpMax:  [3]float64{0.55, 0.50, 0.30},
		SwayFreqMin: 0.15,
		SwayFreqMax: 0.40,

		RotSpeedMin: 0.001,
		RotSpeedMax: 0.004,

		BreathSpeedMin: 0.6,
		BreathSpeedMax: 1.2,
		BreathAmpMin:   0.02,
		BreathAmpMax:   0.05,

		PulseFreq1Min: 0.8,
		PulseFreq1Max: 1.6,
		PulseFreq2Min: 1.7,
		PulseFreq2Max: 3.1,
		PulseMixMin:   0.3,
		PulseMixMax:   0.7,
		PulseAmpMin:   0.6,
		PulseAmpMax:   1.0,
		PulsePhase2:   1.7,
	}

	Wave = WaveConfig{
		FadeIn:        0.12,
		FadeOut:       0.03,
		KillThreshold: 0.005,
		DormantTime:   -10.0,
	}

	Noise = NoiseConfig{
		Target: 0.18,
		RampUp: 0.05,
		Decay:  0.06,
	}

	Appearance = AppearanceConfig{
		HoverRate:       0.08,
		HoverScale:      0.18,
		ColorRise:       0.14,
		ColorFall:       0.06,
		OpacityRate:     0.08,
		DimmedOpacity:   0.04,
		CoreOpacityRate: 0.08,
		CorePulseScale:  0.1,
		CoreDarkBase:    0.15,
		CoreDarkSpan:    0.4,
		CoreLightBase:   0.18,
		CoreLightSpan:   0.1,
		InitialOpacity:  1.0,
	}

	Label = LabelConfig{
		FontSize:     28,
		DotStride:    2,
		DotSpacing:   0.035,
		Height:       2.4,
		DotsPerSec:   800,
		Delay:        2.2,
		Stagger:      0.15,
		ColorRise:    0.18,
		ColorFall:    0.06,
		OpacityRate:  0.08,
		BaseOpacity:  0.55,
		HoverOpacity: 0.45,
	}

	Camera = CameraConfig{
		StartPos:      [3]float64{0, 2, 22},
		StartTarget:   [3]float64{0, 0, 0},
		FOV:           50,
		Near:          0.1,
		Far:           200,
		FlyRate:       1.1,
		FocusDistance: 7.5,
		SideOffset:    -1.5,
		Lift:          0.6,
		OrbitSpeed:    0.005,
	}

	Sway = SwayConfig{
		Amp:  [3]float64{0.18, 0.10, 0.06},
		Freq: [3]float64{0.11, 0.07, 0.05},
		Rise: 0.008,
		Fall: 0.04,
	}

	DOF = DOFConfig{
		Aperture:     0.0006,
		FarFocus:     22.0,
		FocusRate:    0.08,
		ApertureRate: 0.05,
	}

	Intro = IntroConfig{
		Duration: 2.0,
	}
}
