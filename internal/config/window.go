package config

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  float32
	Height float32
}

func loadWindow() WindowConfig {
	return WindowConfig{
		Width:  float32(intEnvOrDefault(envWindowWidth, defaultWindowWidth)),
		Height: float32(intEnvOrDefault(envWindowHeight, defaultWindowHeight)),
	}
}
