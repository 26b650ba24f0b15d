package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// RegisterMovementUseCase registra movimientos directos de inventario de forma
// transaccional (entrada, salida, ajuste, transferencia) con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback. Las salidas por venta NO pasan por aquí:
// esas van por el protocolo de reserva (Reserve/Confirm) del ciclo de la venta.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// MovementInput entrada para registrar un movimiento directo.
// Para entry/exit/adjustment: ProductID, WarehouseID, Quantity, Reason.
// Para transfer: ProductID, FromWarehouseID, ToWarehouseID, Quantity.
type MovementInput struct {
	UserID          string
	ProductID       string
	WarehouseID     string
	FromWarehouseID string
	ToWarehouseID   string
	Type            entity.MovementType
	Reason          entity.MovementReason
	Quantity        decimal.Decimal
	Notes           string
}

// RegisterMovement valida producto y bodega(s), inicia la transacción, bloquea la
// fila de stock y aplica la lógica según tipo; Commit o Rollback lo hace TxRunner.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) error {
	switch input.Type {
	case entity.MovementEntry, entity.MovementExit, entity.MovementAdjustment, entity.MovementLoss, entity.MovementReturn:
		if input.ProductID == "" || input.WarehouseID == "" {
			return fmt.Errorf("%w: producto y bodega son obligatorios", domain.ErrInvalidInput)
		}
		if input.Quantity.IsZero() {
			return fmt.Errorf("%w: la cantidad no puede ser cero", domain.ErrInvalidInput)
		}
		if input.Type != entity.MovementAdjustment && input.Quantity.IsNegative() {
			return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
		}
	case entity.MovementTransfer:
		if input.ProductID == "" || input.FromWarehouseID == "" || input.ToWarehouseID == "" {
			return fmt.Errorf("%w: producto y bodegas origen/destino son obligatorios", domain.ErrInvalidInput)
		}
		if input.FromWarehouseID == input.ToWarehouseID {
			return fmt.Errorf("%w: la bodega destino debe ser distinta a la origen", domain.ErrInvalidInput)
		}
		if !input.Quantity.IsPositive() {
			return fmt.Errorf("%w: la cantidad a transferir debe ser positiva", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, input.Type)
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, input.ProductID)
	}

	if input.Type == entity.MovementTransfer {
		fromWh, err := uc.warehouseRepo.GetByID(input.FromWarehouseID)
		if err != nil {
			return err
		}
		toWh, err := uc.warehouseRepo.GetByID(input.ToWarehouseID)
		if err != nil {
			return err
		}
		if fromWh == nil || toWh == nil {
			return fmt.Errorf("%w: bodega origen o destino", domain.ErrNotFound)
		}
	} else {
		wh, err := uc.warehouseRepo.GetByID(input.WarehouseID)
		if err != nil {
			return err
		}
		if wh == nil {
			return fmt.Errorf("%w: bodega %s", domain.ErrNotFound, input.WarehouseID)
		}
	}

	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		switch input.Type {
		case entity.MovementEntry, entity.MovementReturn:
			return uc.doEntry(stockRepo, movementRepo, input)
		case entity.MovementExit, entity.MovementLoss:
			return uc.doExit(stockRepo, movementRepo, input)
		case entity.MovementAdjustment:
			return uc.doAdjustment(stockRepo, movementRepo, input)
		case entity.MovementTransfer:
			return uc.doTransfer(stockRepo, movementRepo, input)
		}
		return domain.ErrInvalidInput
	})
}

// doEntry: bloquea (o crea) la fila de stock, suma físico y guarda el movimiento.
func (uc *RegisterMovementUseCase) doEntry(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	input MovementInput,
) error {
	qty, err := valueobject.NewQuantity(input.Quantity)
	if err != nil {
		return err
	}

	stock, err := stockRepo.GetForUpdate(input.ProductID, input.WarehouseID)
	if err != nil {
		return err
	}
	created := false
	if stock == nil {
		stock = entity.NewStock(input.ProductID, input.WarehouseID, valueobject.ZeroQuantity())
		created = true
	}

	previous := stock.Quantity
	if err := stock.AddQuantity(qty); err != nil {
		return err
	}
	if created {
		if err := stockRepo.Save(stock); err != nil {
			return err
		}
	} else if err := stockRepo.Update(stock); err != nil {
		return err
	}

	reason := input.Reason
	if reason == "" {
		reason = entity.ReasonPurchase
	}
	movement := entity.NewStockMovement(input.ProductID, stock.ID, input.Type, reason,
		qty, previous, stock.Quantity, input.UserID)
	if input.Notes != "" {
		movement.WithNotes(input.Notes)
	}
	return movementRepo.Create(movement)
}

// doExit: bloquea la fila, verifica disponible (físico menos reservado),
// resta y guarda el movimiento.
func (uc *RegisterMovementUseCase) doExit(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	input MovementInput,
) error {
	qty, err := valueobject.NewQuantity(input.Quantity)
	if err != nil {
		return err
	}

	stock, err := stockRepo.GetForUpdate(input.ProductID, input.WarehouseID)
	if err != nil {
		return err
	}
	if stock == nil {
		return fmt.Errorf("%w: stock de producto %s en bodega %s", domain.ErrNotFound, input.ProductID, input.WarehouseID)
	}

	previous := stock.Quantity
	if err := stock.RemoveQuantity(qty); err != nil {
		return err
	}
	if err := stockRepo.Update(stock); err != nil {
		return err
	}

	reason := input.Reason
	if reason == "" {
		reason = entity.ReasonManual
	}
	movement := entity.NewStockMovement(input.ProductID, stock.ID, input.Type, reason,
		qty, previous, stock.Quantity, input.UserID)
	if input.Notes != "" {
		movement.WithNotes(input.Notes)
	}
	return movementRepo.Create(movement)
}

// doAdjustment: positivo entra como entry, negativo sale como exit; motivo inventory.
func (uc *RegisterMovementUseCase) doAdjustment(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	input MovementInput,
) error {
	adj := input
	if adj.Reason == "" {
		adj.Reason = entity.ReasonInventory
	}
	if input.Quantity.IsPositive() {
		return uc.doEntry(stockRepo, movementRepo, adj)
	}
	adj.Quantity = input.Quantity.Neg()
	return uc.doExit(stockRepo, movementRepo, adj)
}

// doTransfer: resta del origen y suma en destino dentro de la misma transacción;
// guarda dos movimientos (transfer_out y transfer_in) con la transferencia como referencia.
func (uc *RegisterMovementUseCase) doTransfer(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	input MovementInput,
) error {
	qty, err := valueobject.NewQuantity(input.Quantity)
	if err != nil {
		return err
	}

	origin, err := stockRepo.GetForUpdate(input.ProductID, input.FromWarehouseID)
	if err != nil {
		return err
	}
	if origin == nil {
		return fmt.Errorf("%w: stock de producto %s en bodega %s", domain.ErrNotFound, input.ProductID, input.FromWarehouseID)
	}

	dest, err := stockRepo.GetForUpdate(input.ProductID, input.ToWarehouseID)
	if err != nil {
		return err
	}
	destCreated := false
	if dest == nil {
		dest = entity.NewStock(input.ProductID, input.ToWarehouseID, valueobject.ZeroQuantity())
		destCreated = true
	}

	originPrev := origin.Quantity
	destPrev := dest.Quantity
	if err := origin.RemoveQuantity(qty); err != nil {
		return err
	}
	if err := dest.AddQuantity(qty); err != nil {
		return err
	}
	if err := stockRepo.Update(origin); err != nil {
		return err
	}
	if destCreated {
		if err := stockRepo.Save(dest); err != nil {
			return err
		}
	} else if err := stockRepo.Update(dest); err != nil {
		return err
	}

	outMov := entity.NewStockMovement(input.ProductID, origin.ID, entity.MovementTransfer, entity.ReasonTransferOut,
		qty, originPrev, origin.Quantity, input.UserID).
		WithReference(dest.ID, "transfer")
	if err := movementRepo.Create(outMov); err != nil {
		return err
	}
	inMov := entity.NewStockMovement(input.ProductID, dest.ID, entity.MovementTransfer, entity.ReasonTransferIn,
		qty, destPrev, dest.Quantity, input.UserID).
		WithReference(origin.ID, "transfer")
	return movementRepo.Create(inMov)
}
