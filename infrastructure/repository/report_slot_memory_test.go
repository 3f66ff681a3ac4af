package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

func TestMemoryReportSlotRepository_StartsIdle(t *testing.T) {
	repo := NewMemoryReportSlotRepository()

	for _, view := range domain.Views {
		slot, err := repo.Get(context.Background(), view)
		require.NoError(t, err)
		assert.Equal(t, domain.SlotIdle, slot.State)
		assert.Empty(t, slot.Rows)
	}
}

func TestMemoryReportSlotRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryReportSlotRepository()
	now := time.Now()
	rows := []domain.SyntheticRow{{Date: "2024-03-10", Placement: domain.PlacementAll, LinkClicks: 3}}

	updated, err := repo.Update(ctx, domain.ViewCampaign, func(slot *domain.ReportSlot) error {
		slot.Succeed("sub-1", rows, now)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotSucceeded, updated.State)

	// A cópia devolvida não altera o estado guardado
	updated.Rows[0].LinkClicks = 99

	slot, err := repo.Get(ctx, domain.ViewCampaign)
	require.NoError(t, err)
	assert.Equal(t, 3, slot.Rows[0].LinkClicks)

	other, err := repo.Get(ctx, domain.ViewReporting)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotIdle, other.State)
}

func TestMemoryReportSlotRepository_UpdateErrorKeepsState(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryReportSlotRepository()

	_, err := repo.Update(ctx, domain.ViewReporting, func(slot *domain.ReportSlot) error {
		slot.Begin("sub-1", time.Now())
		return errors.New("falhou")
	})
	require.Error(t, err)

	slot, err := repo.Get(ctx, domain.ViewReporting)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotIdle, slot.State)
}

func TestMemoryReportSlotRepository_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryReportSlotRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Update(ctx, domain.ViewCampaign, func(slot *domain.ReportSlot) error {
				slot.Rows = append(slot.Rows, domain.SyntheticRow{})
				return nil
			})
		}()
	}
	wg.Wait()

	slot, err := repo.Get(ctx, domain.ViewCampaign)
	require.NoError(t, err)
	assert.Len(t, slot.Rows, 50)
}
