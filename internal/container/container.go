package container

import (
	"fmt"

	"hypocotyl-bot/config"
	app "hypocotyl-bot/internal/application"
	"hypocotyl-bot/internal/domain/contour"
	"hypocotyl-bot/internal/domain/entity"
	"hypocotyl-bot/internal/domain/port"
	"hypocotyl-bot/internal/infrastructure/vision"
)

// Размеры картинок, которые бот отправляет в ответ
const (
	overlayMinSide = 256
	modesCanvas    = 512
)

type Container struct {
	UserService      *app.UserService
	PhenotypeService *app.PhenotypeService
	Options          contour.Options
}

func New(cfg *config.Config, userRepo port.UserRepository, sampleRepo port.SampleRepository) (*Container, error) {
	// nil означает встроенную трассировку Мура
	var tracer port.BoundaryTracer
	if cfg.Tracer == config.TracerGoCV {
		tracer = vision.NewGoCVTracer()
		if err := checkTracer(tracer); err != nil {
			return nil, fmt.Errorf("tracer %q: %w", cfg.Tracer, err)
		}
	}

	opts := cfg.ContourOptions()
	userService := app.NewUserService(userRepo)
	phenotypeService := app.NewPhenotypeService(
		userService,
		vision.NewMaskDecoder(cfg.MaskThreshold, cfg.MaskInvert, cfg.MaskMaxSide),
		contour.NewExtractor(tracer, opts),
		sampleRepo,
		vision.NewRenderer(overlayMinSide, modesCanvas),
		cfg.PCAComponents,
	)

	return &Container{
		UserService:      userService,
		PhenotypeService: phenotypeService,
		Options:          opts,
	}, nil
}

// checkTracer трассирует маску из одного пикселя, чтобы сборка без OpenCV
// обнаружилась при запуске, а не на первой маске
func checkTracer(tracer port.BoundaryTracer) error {
	mask, err := entity.NewBinaryMask(1, 1, []bool{true})
	if err != nil {
		return err
	}
	_, err = tracer.Trace(mask)
	return err
}
