package config

// Default values for optional keys.
const (
	DefaultBusyTime     = 20
	DefaultHistoryLimit = 100
)

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		KeyBusyTime:     DefaultBusyTime,
		KeyHistoryLimit: DefaultHistoryLimit,
	}
}
