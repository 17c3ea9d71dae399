package scenes

import "strconv"

// Config controls scene layouts and block behaviour. Sizes are in tiles,
// rates and durations in scene seconds.
type Config struct {
	Seed int64

	// Count, MinSize and MaxSize drive the scatter layout.
	Count   int
	MinSize int
	MaxSize int

	FlashDecay  float64
	ShakeTime   float64
	ShakeAmount float64
	SolidRate   float64

	// LifePeriod is the time between generations of the life scene and
	// LifeDensity the share of cells alive after a reset.
	LifePeriod  float64
	LifeDensity float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:        1337,
		Count:       14,
		MinSize:     1,
		MaxSize:     5,
		FlashDecay:  4,
		ShakeTime:   0.2,
		ShakeAmount: 1,
		SolidRate:   2,
		LifePeriod:  0.4,
		LifeDensity: 0.3,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Count = parsed
		}
	}
	if v, ok := cfg["min_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MinSize = parsed
		}
	}
	if v, ok := cfg["max_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxSize = parsed
		}
	}
	if c.MaxSize < c.MinSize {
		c.MaxSize = c.MinSize
	}
	if v, ok := cfg["flash_decay"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.FlashDecay = parsed
		}
	}
	if v, ok := cfg["shake_time"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.ShakeTime = parsed
		}
	}
	if v, ok := cfg["shake_amount"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.ShakeAmount = parsed
		}
	}
	if v, ok := cfg["solid_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.SolidRate = parsed
		}
	}
	if v, ok := cfg["life_period"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.LifePeriod = parsed
		}
	}
	if v, ok := cfg["life_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.LifeDensity = parsed
		}
	}
	return c
}
