package memory

import (
	"time"

	"startup-compliance-be/internal/dto"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SummaryRepository caches per-owner dashboard summaries. Absorption
// invalidates the owner's entry so the dashboard reflects new checklists
// immediately.
type SummaryRepository struct {
	cache *cache.Cache
}

func NewSummaryRepository() *SummaryRepository {
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &SummaryRepository{
		cache: c,
	}
}

func (r *SummaryRepository) Save(userID uuid.UUID, summary *dto.DashboardSummaryResponse) {
	r.cache.Set(userID.String(), summary, cache.DefaultExpiration)
}

func (r *SummaryRepository) Get(userID uuid.UUID) (*dto.DashboardSummaryResponse, bool) {
	if x, found := r.cache.Get(userID.String()); found {
		return x.(*dto.DashboardSummaryResponse), true
	}
	return nil, false
}

func (r *SummaryRepository) Invalidate(userID uuid.UUID) {
	r.cache.Delete(userID.String())
}
