package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// RejectSaleUseCase rechaza una venta pendiente con motivo obligatorio.
// La venta rechazada vuelve a ser editable y puede reenviarse a aprobación.
type RejectSaleUseCase struct {
	saleRepo repository.SaleRepository
}

// NewRejectSaleUseCase construye el caso de uso.
func NewRejectSaleUseCase(saleRepo repository.SaleRepository) *RejectSaleUseCase {
	return &RejectSaleUseCase{saleRepo: saleRepo}
}

// Execute valida el motivo y delega en el agregado.
func (uc *RejectSaleUseCase) Execute(ctx context.Context, saleID, userID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: el motivo de rechazo es obligatorio", domain.ErrInvalidInput)
	}
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
	}
	if err := sale.Reject(userID, reason); err != nil {
		return err
	}
	return uc.saleRepo.Update(sale)
}
