package config

// mergeConfigs merges overlay config into base config.
// Scalars: overlay wins if non-zero
// Maps: deep merge
// Arrays: overlay replaces catalog paths, receivers concatenate
func mergeConfigs(base, overlay *Config) *Config {
	if overlay == nil {
		return base
	}
	if base == nil {
		return overlay
	}

	result := *base // shallow copy

	if overlay.Output.Path != "" {
		result.Output.Path = overlay.Output.Path
	}
	if overlay.Output.Generator != "" {
		result.Output.Generator = overlay.Output.Generator
	}

	// Project catalog paths replace the user's.
	if len(overlay.Catalog.Paths) > 0 {
		result.Catalog.Paths = append([]string(nil), overlay.Catalog.Paths...)
		result.Catalog.Builtin = overlay.Catalog.Builtin
	} else if overlay.Catalog.Builtin {
		result.Catalog.Builtin = true
	}

	if overlay.Logging.ErrorLog != "" {
		result.Logging.ErrorLog = overlay.Logging.ErrorLog
	}
	if len(overlay.Logging.Receivers) > 0 {
		result.Logging.Receivers = append(
			append([]ReceiverConfig(nil), base.Logging.Receivers...),
			overlay.Logging.Receivers...,
		)
	}
	result.Logging.Attributes = mergeStringMap(base.Logging.Attributes, overlay.Logging.Attributes)

	return &result
}

// mergeStringMap merges two string maps, overlay wins on key conflicts.
func mergeStringMap(base, overlay map[string]string) map[string]string {
	if len(overlay) == 0 {
		return base
	}
	if len(base) == 0 {
		return overlay
	}

	result := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		result[k] = v
	}
	for k, v := range overlay {
		result[k] = v
	}
	return result
}
