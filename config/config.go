package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"hypocotyl-bot/internal/domain/contour"
)

// Трассировщики контуров
const (
	TracerMoore = "moore"
	TracerGoCV  = "gocv"
)

type Config struct {
	TelegramToken string

	ContourSamples  int                     // CONTOUR_SAMPLES
	ReferencePolicy contour.ReferencePolicy // REFERENCE_POLICY
	PCAComponents   int                     // PCA_COMPONENTS
	Tracer          string                  // TRACER: moore | gocv

	MaskThreshold uint8 // MASK_THRESHOLD
	MaskInvert    bool  // MASK_INVERT
	MaskMaxSide   int   // MASK_MAX_SIDE
}

// ContourOptions параметры извлечения контура из конфигурации
func (c *Config) ContourOptions() contour.Options {
	return contour.Options{
		Samples:   c.ContourSamples,
		Reference: c.ReferencePolicy,
	}
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		Tracer:        envString("TRACER", TracerMoore),
	}

	var err error
	if cfg.ContourSamples, err = envInt("CONTOUR_SAMPLES", contour.DefaultSamples); err != nil {
		return nil, err
	}
	if cfg.ContourSamples < 3 {
		return nil, fmt.Errorf("CONTOUR_SAMPLES must be at least 3, got %d", cfg.ContourSamples)
	}
	if cfg.ReferencePolicy, err = contour.ParseReferencePolicy(envString("REFERENCE_POLICY", string(contour.TopLeft))); err != nil {
		return nil, fmt.Errorf("REFERENCE_POLICY: %w", err)
	}
	if cfg.PCAComponents, err = envInt("PCA_COMPONENTS", 3); err != nil {
		return nil, err
	}
	if cfg.PCAComponents < 1 {
		return nil, fmt.Errorf("PCA_COMPONENTS must be positive, got %d", cfg.PCAComponents)
	}
	if cfg.Tracer != TracerMoore && cfg.Tracer != TracerGoCV {
		return nil, fmt.Errorf("TRACER must be %q or %q, got %q", TracerMoore, TracerGoCV, cfg.Tracer)
	}

	threshold, err := envInt("MASK_THRESHOLD", 128)
	if err != nil {
		return nil, err
	}
	if threshold < 0 || threshold > 255 {
		return nil, fmt.Errorf("MASK_THRESHOLD must be in [0, 255], got %d", threshold)
	}
	cfg.MaskThreshold = uint8(threshold)

	if cfg.MaskInvert, err = envBool("MASK_INVERT", false); err != nil {
		return nil, err
	}
	if cfg.MaskMaxSide, err = envInt("MASK_MAX_SIDE", 1024); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
