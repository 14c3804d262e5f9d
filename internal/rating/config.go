package rating

import "strings"

// Animation names the hover emphasis applied to a star.
type Animation string

const (
	AnimationNone   Animation = "none"
	AnimationScale  Animation = "scale"
	AnimationRotate Animation = "rotate"
	AnimationBounce Animation = "bounce"
)

// Animations returns every supported animation in display order.
func Animations() []Animation {
	return []Animation{AnimationNone, AnimationScale, AnimationRotate, AnimationBounce}
}

// ParseAnimation normalizes name. Unknown names report false and yield AnimationNone.
func ParseAnimation(name string) (Animation, bool) {
	norm := Animation(strings.ToLower(strings.TrimSpace(name)))
	if norm == "" {
		return AnimationNone, true
	}
	for _, a := range Animations() {
		if a == norm {
			return a, true
		}
	}
	return AnimationNone, false
}

// Config is supplied by the caller and never mutated by the widget.
type Config struct {
	MaxStars            int
	StarColor           string
	LabelColor          string
	StarSize            float64
	Labels              []string
	ContainerClass      string
	DefaultValue        float64
	AllowHalfStars      bool
	AllowResetOnReclick bool
	Animation           Animation
	OnRatingChanged     func(float64)
}

const (
	DefaultMaxStars   = 5
	DefaultStarColor  = "#fcc419"
	DefaultLabelColor = "#0d0d0d"
	DefaultStarSize   = 48
)

func DefaultConfig() Config {
	return Config{
		MaxStars:            DefaultMaxStars,
		StarColor:           DefaultStarColor,
		LabelColor:          DefaultLabelColor,
		StarSize:            DefaultStarSize,
		AllowHalfStars:      true,
		AllowResetOnReclick: true,
		Animation:           AnimationNone,
	}
}
