package port

import (
	"context"

	"hypocotyl-bot/internal/domain/entity"
)

// SampleRepository интерфейс хранилища образцов контуров
type SampleRepository interface {
	// Add сохраняет образец и присваивает ему ID
	Add(ctx context.Context, sample *entity.Sample) error

	// List возвращает образцы пользователя в порядке добавления;
	// пустой genotype означает все генотипы
	List(ctx context.Context, userID int64, genotype string) ([]*entity.Sample, error)

	// Clear удаляет все образцы пользователя
	Clear(ctx context.Context, userID int64) error
}
