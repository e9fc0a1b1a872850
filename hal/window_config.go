package hal

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title   string
	Width   int
	Height  int
	Scale   int
	TPS     int
	ShowFPS bool
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "Floor Ceil Perspective"
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}
