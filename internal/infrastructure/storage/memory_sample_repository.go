package storage

import (
	"context"
	"sync"

	"hypocotyl-bot/internal/domain/entity"
	"hypocotyl-bot/internal/domain/port"
)

// MemorySampleRepository in-memory хранилище образцов контуров
type MemorySampleRepository struct {
	mu      sync.RWMutex
	nextID  int64
	samples map[int64][]*entity.Sample // по ID пользователя
}

// NewMemorySampleRepository создаёт новое in-memory хранилище образцов
func NewMemorySampleRepository() *MemorySampleRepository {
	return &MemorySampleRepository{
		samples: make(map[int64][]*entity.Sample),
	}
}

// Add сохраняет образец и присваивает ему ID
func (r *MemorySampleRepository) Add(ctx context.Context, sample *entity.Sample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	sample.ID = r.nextID
	r.samples[sample.UserID] = append(r.samples[sample.UserID], sample)

	return nil
}

// List возвращает образцы пользователя, при непустом genotype — только этого генотипа
func (r *MemorySampleRepository) List(ctx context.Context, userID int64, genotype string) ([]*entity.Sample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.samples[userID]
	out := make([]*entity.Sample, 0, len(stored))
	for _, s := range stored {
		if genotype == "" || s.Genotype == genotype {
			out = append(out, s)
		}
	}

	return out, nil
}

// Clear удаляет все образцы пользователя
func (r *MemorySampleRepository) Clear(ctx context.Context, userID int64) error {
	r.mu.Lock()
	delete(r.samples, userID)
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.SampleRepository = (*MemorySampleRepository)(nil)
