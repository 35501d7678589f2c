package entity

import "time"

// DefaultGenotype метка для образцов без подписи
const DefaultGenotype = "unlabeled"

// Sample сохранённый контур гипокотиля одного пользователя
type Sample struct {
	ID        int64              // присваивается хранилищем
	UserID    int64              // владелец образца
	Genotype  string             // метка генотипа из подписи к изображению
	Contour   *NormalizedContour // нормализованный контур
	CreatedAt time.Time
}

// NewSample создаёт образец; пустая метка заменяется на DefaultGenotype
func NewSample(userID int64, genotype string, contour *NormalizedContour) *Sample {
	if genotype == "" {
		genotype = DefaultGenotype
	}
	return &Sample{
		UserID:    userID,
		Genotype:  genotype,
		Contour:   contour,
		CreatedAt: time.Now(),
	}
}
