package redis

const (
	// KeyConfig is the single fixed slot holding the dashboard document.
	// Named after the SPA's localStorage key for compatibility with
	// exported/imported files and operator expectations.
	KeyConfig = "homegrid:homelab_dashboard_config"
)

// ConfigKey returns the Redis key for the dashboard document slot.
func ConfigKey() string {
	return KeyConfig
}
