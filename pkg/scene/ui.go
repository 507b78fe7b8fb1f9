package scene

// KeyState answers synchronous questions about the keyboard. IsKeyDown
// reports a key held during this frame, IsKeyPressed a key that went down
// since the previous frame.
type KeyState interface {
	IsKeyDown(key string) bool
	IsKeyPressed(key string) bool
}

// Key names as reported by the terminal.
const (
	KeyUp    = "up"
	KeyDown  = "down"
	KeyLeft  = "left"
	KeyRight = "right"
)

// Category names a group of mutually exclusive UI toggles.
type Category string

const (
	CategoryAnimation  Category = "Animation"
	CategoryProjection Category = "Projection"
)

type binding[T any] struct {
	key   string
	value T
}

// Within a category the first pressed binding wins.
var (
	animationKeys = []binding[Animation]{
		{"a", AnimationTranslate},
		{"s", AnimationRotate},
		{"d", AnimationScale},
		{"x", AnimationOff},
	}
	projectionKeys = []binding[Projection]{
		{"p", ProjectionPerspective},
		{"o", ProjectionOrthographic},
	}
)

// UIState holds the active selection of each category.
type UIState struct {
	Animation  Animation
	Projection Projection
}

// DefaultUIState starts rotating under a perspective projection.
func DefaultUIState() UIState {
	return UIState{
		Animation:  AnimationRotate,
		Projection: ProjectionPerspective,
	}
}

// State returns the name of the active selection in category c, or "" for
// an unknown category.
func (s UIState) State(c Category) string {
	switch c {
	case CategoryAnimation:
		return s.Animation.String()
	case CategoryProjection:
		return s.Projection.String()
	}
	return ""
}

// Apply returns the state after this frame's key presses.
func (s UIState) Apply(keys KeyState) UIState {
	for _, b := range animationKeys {
		if keys.IsKeyPressed(b.key) {
			s.Animation = b.value
			break
		}
	}
	for _, b := range projectionKeys {
		if keys.IsKeyPressed(b.key) {
			s.Projection = b.value
			break
		}
	}
	return s
}

// Keys returns every key name the scene reads, for input layers that
// must translate terminal events into names.
func Keys() []string {
	keys := []string{KeyUp, KeyDown, KeyLeft, KeyRight}
	for _, b := range animationKeys {
		keys = append(keys, b.key)
	}
	for _, b := range projectionKeys {
		keys = append(keys, b.key)
	}
	return keys
}
