package repository

import (
	"context"
	"sync"

	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

// memoryReportSlotRepository mantém os slots em memória, usado quando o banco está desabilitado
type memoryReportSlotRepository struct {
	mu    sync.Mutex
	slots map[domain.View]*domain.ReportSlot
}

func NewMemoryReportSlotRepository() ReportSlotRepository {
	slots := make(map[domain.View]*domain.ReportSlot, len(domain.Views))
	for _, view := range domain.Views {
		slots[view] = domain.NewReportSlot(view)
	}

	return &memoryReportSlotRepository{
		slots: slots,
	}
}

func (r *memoryReportSlotRepository) Get(_ context.Context, view domain.View) (*domain.ReportSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.slot(view).Clone(), nil
}

func (r *memoryReportSlotRepository) Update(_ context.Context, view domain.View, fn func(*domain.ReportSlot) error) (*domain.ReportSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	working := r.slot(view).Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	r.slots[view] = working
	return working.Clone(), nil
}

func (r *memoryReportSlotRepository) slot(view domain.View) *domain.ReportSlot {
	slot, ok := r.slots[view]
	if !ok {
		slot = domain.NewReportSlot(view)
		r.slots[view] = slot
	}
	return slot
}
