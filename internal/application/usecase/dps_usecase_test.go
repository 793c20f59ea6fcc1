package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dps-scheduler/internal/application/dto"
	"github.com/jhoicas/dps-scheduler/internal/application/usecase"
	"github.com/jhoicas/dps-scheduler/internal/domain"
	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
	"github.com/jhoicas/dps-scheduler/internal/domain/schedule"
	"github.com/jhoicas/dps-scheduler/pkg/logger"
)

// Fakes en memoria de los puertos de persistencia.

type fakeCalendarRepo struct{ days []entity.CalendarDay }

func (f *fakeCalendarRepo) ListAll() ([]entity.CalendarDay, error)    { return f.days, nil }
func (f *fakeCalendarRepo) ReplaceAll(days []entity.CalendarDay) error { f.days = days; return nil }

type fakeSKURepo struct{ skus []entity.SKUInfo }

func (f *fakeSKURepo) ListAll() ([]entity.SKUInfo, error) { return f.skus, nil }
func (f *fakeSKURepo) GetByMaterial(material string) (*entity.SKUInfo, error) {
	for i := range f.skus {
		if f.skus[i].Material == material {
			return &f.skus[i], nil
		}
	}
	return nil, nil
}
func (f *fakeSKURepo) ReplaceAll(skus []entity.SKUInfo) error { f.skus = skus; return nil }

type fakeRunRepo struct{ runs []*entity.ScheduleRun }

func (f *fakeRunRepo) Create(run *entity.ScheduleRun) error {
	if run.ID == "" {
		run.ID = "run-1"
	}
	f.runs = append(f.runs, run)
	return nil
}
func (f *fakeRunRepo) ListRecent(limit int) ([]*entity.ScheduleRun, error) {
	if limit > len(f.runs) {
		limit = len(f.runs)
	}
	return f.runs[:limit], nil
}

func newTestUseCase() (*usecase.DPSUseCase, *fakeRunRepo) {
	calRepo := &fakeCalendarRepo{days: []entity.CalendarDay{
		{Date: time.Date(2026, time.January, 16, 0, 0, 0, 0, time.UTC), Week: 3},
	}}
	skuRepo := &fakeSKURepo{skus: []entity.SKUInfo{
		{
			Material:    "X1",
			Description: "Producto X1",
			KgPerUnit:   decimal.NewFromFloat(7.5),
			Speed:       decimal.NewFromInt(10),
			Brand:       "MarcaA",
			Country:     "ID",
		},
	}}
	runRepo := &fakeRunRepo{}
	eng := schedule.NewEngine([]string{"AB", "CD", "GH", "JK", "TU", "VW", "XY"})
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return usecase.NewDPSUseCase(eng, calRepo, skuRepo, runRepo, log), runRepo
}

// TestRunSchedule_CorridaCompleta: la corrida programa, filtra, anota liberación,
// enriquece desde el maestro y persiste el resumen.
func TestRunSchedule_CorridaCompleta(t *testing.T) {
	uc, runRepo := newTestUseCase()

	out, err := uc.RunSchedule(context.Background(), "user-1", dto.ScheduleRequest{
		BaseMonth: 1,
		Rows: []dto.ScheduleRowRequest{
			{Line: "AB", Date: "2026-01-10", Material: "X1", Quantity: decimal.NewFromInt(240)},
			{Line: "ZZ", Date: "2026-01-10", Material: "X1", Quantity: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, [3]int{1, 2, 3}, out.Window)
	require.Len(t, out.Lines, 1)
	require.Len(t, out.Lines[0].Slots, 1)

	slot := out.Lines[0].Slots[0]
	assert.Equal(t, "X1", slot.Material)
	assert.Equal(t, "Producto X1", slot.Description)
	assert.Equal(t, "MarcaA", slot.Brand, "enriquecimiento desde el maestro")
	// fin domingo 11-01 07:00 -> liberación viernes 16-01, semana 3 del calendario
	assert.Equal(t, "2026-01-16", slot.ReleaseTime)
	require.NotNil(t, slot.ReleaseWeek)
	assert.Equal(t, 3, *slot.ReleaseWeek)
	assert.Equal(t, "1612026", slot.ReleaseIdent)

	require.Len(t, runRepo.runs, 1)
	assert.Equal(t, 2, runRepo.runs[0].RowsIn)
	assert.Equal(t, 1, runRepo.runs[0].RecordsUsed)
	assert.Equal(t, 1, runRepo.runs[0].Rejected)
	assert.Equal(t, "user-1", runRepo.runs[0].CreatedBy)
}

// TestRunSchedule_MesInvalido: mes base fuera de 1-12 rechaza la corrida entera.
func TestRunSchedule_MesInvalido(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.RunSchedule(context.Background(), "user-1", dto.ScheduleRequest{BaseMonth: 13})
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}

// TestRunSchedule_SinSlots: una corrida que no produce slots es válida y
// también queda registrada.
func TestRunSchedule_SinSlots(t *testing.T) {
	uc, runRepo := newTestUseCase()
	out, err := uc.RunSchedule(context.Background(), "", dto.ScheduleRequest{
		BaseMonth: 6, // {6,7,8}: nada de enero pasa el filtro
		Rows: []dto.ScheduleRowRequest{
			{Line: "AB", Date: "2026-01-10", Material: "X1", Quantity: decimal.NewFromInt(240)},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, out.Lines)
	assert.Zero(t, out.Report.SlotsOut)
	require.Len(t, runRepo.runs, 1)
	assert.Zero(t, runRepo.runs[0].SlotsOut)
}
