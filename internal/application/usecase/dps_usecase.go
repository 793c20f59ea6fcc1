package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/dps-scheduler/internal/application/dto"
	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
	"github.com/jhoicas/dps-scheduler/internal/domain/repository"
	"github.com/jhoicas/dps-scheduler/internal/domain/schedule"
	"github.com/jhoicas/dps-scheduler/pkg/logger"
)

// DPSUseCase orquesta una corrida del motor: carga los snapshots de referencia,
// ejecuta el motor y persiste el resumen. Los slots no se persisten.
type DPSUseCase struct {
	engine  *schedule.Engine
	calRepo repository.CalendarRepository
	skuRepo repository.SKURepository
	runRepo repository.ScheduleRunRepository
	log     *logger.Logger
}

// NewDPSUseCase construye el caso de uso.
func NewDPSUseCase(
	engine *schedule.Engine,
	calRepo repository.CalendarRepository,
	skuRepo repository.SKURepository,
	runRepo repository.ScheduleRunRepository,
	log *logger.Logger,
) *DPSUseCase {
	return &DPSUseCase{engine: engine, calRepo: calRepo, skuRepo: skuRepo, runRepo: runRepo, log: log}
}

// RunSchedule ejecuta la corrida completa para el mes base dado.
// Los lookups se cargan una sola vez, antes de programar: el motor no hace I/O.
// Un fallo cargando los snapshots sí es fatal (la corrida no puede empezar);
// los descartes por fila nunca lo son.
func (uc *DPSUseCase) RunSchedule(ctx context.Context, userID string, in dto.ScheduleRequest) (*dto.ScheduleResponse, error) {
	window, err := schedule.NewMonthWindow(in.BaseMonth)
	if err != nil {
		return nil, err
	}

	calendar, skus, err := uc.loadSnapshots()
	if err != nil {
		return nil, err
	}

	rows := make([]schedule.RawRow, 0, len(in.Rows))
	for _, r := range in.Rows {
		rows = append(rows, schedule.RawRow{
			Line:      r.Line,
			Date:      r.Date,
			Material:  r.Material,
			Quantity:  r.Quantity,
			KgPerUnit: r.KgPerUnit,
		})
	}

	result, err := uc.engine.Schedule(ctx, rows, window, calendar, skus)
	if err != nil {
		return nil, err
	}

	run := &entity.ScheduleRun{
		BaseMonth:   in.BaseMonth,
		RowsIn:      result.Report.RowsIn,
		RecordsUsed: result.Report.Accepted,
		Rejected:    result.Report.Rejected(),
		SlotsOut:    result.SlotsOut,
		Lines:       len(result.Lines),
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}
	if err := uc.runRepo.Create(run); err != nil {
		// El resumen es auditoría: no invalida una corrida ya calculada.
		uc.log.Warn().Err(err).Msg("no se pudo persistir el resumen de la corrida")
	}

	uc.log.Info().
		Int("base_month", in.BaseMonth).
		Int("rows_in", result.Report.RowsIn).
		Int("rejected", result.Report.Rejected()).
		Int("slots_out", result.SlotsOut).
		Int("lines", len(result.Lines)).
		Msg("corrida DPS completada")

	return uc.toScheduleResponse(run.ID, in.BaseMonth, window, result, skus), nil
}

// ListRuns lista los resúmenes de corridas más recientes.
func (uc *DPSUseCase) ListRuns(limit int) ([]dto.ScheduleRunResponse, error) {
	runs, err := uc.runRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ScheduleRunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, dto.ScheduleRunResponse{
			ID:          r.ID,
			BaseMonth:   r.BaseMonth,
			RowsIn:      r.RowsIn,
			RecordsUsed: r.RecordsUsed,
			Rejected:    r.Rejected,
			SlotsOut:    r.SlotsOut,
			Lines:       r.Lines,
			CreatedBy:   r.CreatedBy,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

func (uc *DPSUseCase) loadSnapshots() (schedule.CalendarLookup, schedule.SKULookup, error) {
	days, err := uc.calRepo.ListAll()
	if err != nil {
		return nil, nil, err
	}
	calendar := make(schedule.CalendarLookup, len(days))
	for _, d := range days {
		calendar[schedule.DateOnly(d.Date)] = d.Week
	}

	skuRows, err := uc.skuRepo.ListAll()
	if err != nil {
		return nil, nil, err
	}
	skus := make(schedule.SKULookup, len(skuRows))
	for _, s := range skuRows {
		skus[s.Material] = s
	}
	return calendar, skus, nil
}

func (uc *DPSUseCase) toScheduleResponse(runID string, baseMonth int, window schedule.MonthWindow, result *schedule.Result, skus schedule.SKULookup) *dto.ScheduleResponse {
	months := window.Months()
	resp := &dto.ScheduleResponse{
		RunID:     runID,
		BaseMonth: baseMonth,
		Window:    [3]int{int(months[0]), int(months[1]), int(months[2])},
		Lines:     make([]dto.LineScheduleResponse, 0, len(result.Lines)),
		Report: dto.ScheduleReportResponse{
			RowsIn:        result.Report.RowsIn,
			Accepted:      result.Report.Accepted,
			BadLine:       result.Report.BadLine,
			BadDate:       result.Report.BadDate,
			EmptyMaterial: result.Report.EmptyMaterial,
			NonPositive:   result.Report.NonPositive,
			DuplicateKeys: result.Report.DuplicateKeys,
			SlotsOut:      result.SlotsOut,
		},
	}

	for _, line := range result.LineCodes() {
		slots := result.Lines[line]
		lineResp := dto.LineScheduleResponse{Line: line, Slots: make([]dto.SlotResponse, 0, len(slots))}
		for _, s := range slots {
			slot := dto.SlotResponse{
				Date:         s.Date.Format("2006-01-02"),
				Material:     s.Material,
				Description:  s.Description,
				Quantity:     s.Quantity,
				KgPerUnit:    s.KgPerUnit,
				PackSize:     s.PackSize,
				BulkKg:       s.BulkKg,
				ProdHours:    s.ProdHours,
				TimeStart:    s.TimeStart,
				TimeFinish:   s.TimeFinish,
				ReleaseTime:  s.ReleaseTime.Format("2006-01-02"),
				ReleaseWeek:  s.ReleaseWeek,
				ReleaseIdent: s.ReleaseIdent,
			}
			// Enriquecimiento descriptivo del maestro, como el join final del reporte.
			if info, ok := skus.Get(s.Material); ok {
				slot.Country = info.Country
				slot.Brand = info.Brand
				slot.BigCategory = info.BigCategory
				slot.House = info.House
				slot.PackFormat = info.PackFormat
				slot.Machine1 = info.Machine1
			}
			lineResp.Slots = append(lineResp.Slots, slot)
		}
		resp.Lines = append(resp.Lines, lineResp)
	}
	return resp
}
