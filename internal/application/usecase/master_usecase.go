package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/dps-scheduler/internal/application/dto"
	"github.com/jhoicas/dps-scheduler/internal/domain"
	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
	"github.com/jhoicas/dps-scheduler/internal/domain/repository"
)

// MasterTxRunner ejecuta un callback con repos maestros atados a una transacción.
type MasterTxRunner interface {
	RunMaster(ctx context.Context, fn func(
		calRepo repository.CalendarRepository,
		skuRepo repository.SKURepository,
	) error) error
}

// MasterUseCase mantiene los datos de referencia que consume el motor:
// calendario operativo y maestro de materiales. Los reemplazos son atómicos.
type MasterUseCase struct {
	calRepo  repository.CalendarRepository
	skuRepo  repository.SKURepository
	txRunner MasterTxRunner
}

// NewMasterUseCase construye el caso de uso.
func NewMasterUseCase(calRepo repository.CalendarRepository, skuRepo repository.SKURepository, txRunner MasterTxRunner) *MasterUseCase {
	return &MasterUseCase{calRepo: calRepo, skuRepo: skuRepo, txRunner: txRunner}
}

// ReplaceCalendar valida y reemplaza el calendario operativo completo.
func (uc *MasterUseCase) ReplaceCalendar(ctx context.Context, in dto.ReplaceCalendarRequest) (int, error) {
	if len(in.Days) == 0 {
		return 0, domain.ErrInvalidInput
	}
	days := make([]entity.CalendarDay, 0, len(in.Days))
	for _, d := range in.Days {
		date, err := time.Parse("2006-01-02", strings.TrimSpace(d.Date))
		if err != nil || d.Week <= 0 {
			return 0, domain.ErrInvalidInput
		}
		days = append(days, entity.CalendarDay{Date: date, Week: d.Week})
	}
	err := uc.txRunner.RunMaster(ctx, func(calRepo repository.CalendarRepository, _ repository.SKURepository) error {
		return calRepo.ReplaceAll(days)
	})
	if err != nil {
		return 0, err
	}
	return len(days), nil
}

// ListCalendar lista el calendario operativo completo.
func (uc *MasterUseCase) ListCalendar() (*dto.CalendarListResponse, error) {
	days, err := uc.calRepo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CalendarDayDTO, 0, len(days))
	for _, d := range days {
		items = append(items, dto.CalendarDayDTO{Date: d.Date.Format("2006-01-02"), Week: d.Week})
	}
	return &dto.CalendarListResponse{Items: items, Total: len(items)}, nil
}

// ReplaceSKUs valida y reemplaza el maestro de materiales completo.
// Materiales duplicados en la carga colapsan conservando la primera aparición,
// igual que hace el normalizador con sus claves.
func (uc *MasterUseCase) ReplaceSKUs(ctx context.Context, in dto.ReplaceSKUsRequest) (int, error) {
	if len(in.SKUs) == 0 {
		return 0, domain.ErrInvalidInput
	}
	seen := make(map[string]struct{}, len(in.SKUs))
	skus := make([]entity.SKUInfo, 0, len(in.SKUs))
	for _, s := range in.SKUs {
		material := strings.TrimSpace(s.Material)
		if material == "" {
			return 0, domain.ErrInvalidInput
		}
		if _, dup := seen[material]; dup {
			continue
		}
		seen[material] = struct{}{}
		skus = append(skus, entity.SKUInfo{
			Material:    material,
			Description: strings.TrimSpace(s.Description),
			KgPerUnit:   s.KgPerUnit,
			PackSize:    s.PackSize,
			Speed:       s.Speed,
			Line:        strings.ToUpper(strings.TrimSpace(s.Line)),
			Country:     s.Country,
			Brand:       s.Brand,
			BigCategory: s.BigCategory,
			House:       s.House,
			PackFormat:  s.PackFormat,
			Machine1:    s.Machine1,
		})
	}
	err := uc.txRunner.RunMaster(ctx, func(_ repository.CalendarRepository, skuRepo repository.SKURepository) error {
		return skuRepo.ReplaceAll(skus)
	})
	if err != nil {
		return 0, err
	}
	return len(skus), nil
}

// ListSKUs lista el maestro de materiales completo.
func (uc *MasterUseCase) ListSKUs() (*dto.SKUListResponse, error) {
	rows, err := uc.skuRepo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SKUDTO, 0, len(rows))
	for _, s := range rows {
		items = append(items, dto.SKUDTO{
			Material:    s.Material,
			Description: s.Description,
			KgPerUnit:   s.KgPerUnit,
			PackSize:    s.PackSize,
			Speed:       s.Speed,
			Line:        s.Line,
			Country:     s.Country,
			Brand:       s.Brand,
			BigCategory: s.BigCategory,
			House:       s.House,
			PackFormat:  s.PackFormat,
			Machine1:    s.Machine1,
		})
	}
	return &dto.SKUListResponse{Items: items, Total: len(items)}, nil
}
