package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// SubmitForApprovalUseCase envía una venta en borrador al flujo de aprobación.
type SubmitForApprovalUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSubmitForApprovalUseCase construye el caso de uso.
func NewSubmitForApprovalUseCase(saleRepo repository.SaleRepository) *SubmitForApprovalUseCase {
	return &SubmitForApprovalUseCase{saleRepo: saleRepo}
}

// Execute pasa la venta de draft a pending.
func (uc *SubmitForApprovalUseCase) Execute(ctx context.Context, saleID string) error {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
	}
	if err := sale.SubmitForApproval(); err != nil {
		return err
	}
	return uc.saleRepo.Update(sale)
}
