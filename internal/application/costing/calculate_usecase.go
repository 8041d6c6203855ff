package costing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/domain"
	dcosting "github.com/agrococo/custos-api/internal/domain/costing"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
	"github.com/agrococo/custos-api/pkg/logger"
)

var validate = validator.New()

// Quantidade mínima produzida aceita pelo motor. Abaixo disso a divisão do
// custo unitário perde sentido.
var minQuantity = decimal.RequireFromString("0.01")

// CalculateUseCase é o motor de custos: explode a ficha técnica contra os
// custos atuais do almoxarifado, soma o pool de mão de obra, agrega os custos
// indiretos do período, estima frete e impostos do destino, compõe os totais
// com desperdício, compara contra o histórico e persiste registro + alerta em
// uma transação.
type CalculateUseCase struct {
	skuRepo      repository.SKURepository
	bomRepo      repository.BOMItemRepository
	itemRepo     repository.WarehouseItemRepository
	employeeRepo repository.EmployeeRepository
	indirectRepo repository.IndirectCostRepository
	destRepo     repository.ShippingDestinationRepository
	settingRepo  repository.CostSettingRepository
	recordRepo   repository.CostRecordRepository
	txRunner     TxRunner

	defaultThreshold decimal.Decimal
	log              *logger.Logger
}

// NewCalculateUseCase constrói o motor. defaultThreshold é o fallback quando a
// configuração cost_alert_threshold_percent não existe ou não é numérica.
func NewCalculateUseCase(
	skuRepo repository.SKURepository,
	bomRepo repository.BOMItemRepository,
	itemRepo repository.WarehouseItemRepository,
	employeeRepo repository.EmployeeRepository,
	indirectRepo repository.IndirectCostRepository,
	destRepo repository.ShippingDestinationRepository,
	settingRepo repository.CostSettingRepository,
	recordRepo repository.CostRecordRepository,
	txRunner TxRunner,
	defaultThreshold decimal.Decimal,
	log *logger.Logger,
) *CalculateUseCase {
	return &CalculateUseCase{
		skuRepo:          skuRepo,
		bomRepo:          bomRepo,
		itemRepo:         itemRepo,
		employeeRepo:     employeeRepo,
		indirectRepo:     indirectRepo,
		destRepo:         destRepo,
		settingRepo:      settingRepo,
		recordRepo:       recordRepo,
		txRunner:         txRunner,
		defaultThreshold: defaultThreshold,
		log:              log,
	}
}

// Execute roda o pipeline completo de cálculo para o usuário autenticado.
func (uc *CalculateUseCase) Execute(ctx context.Context, userID string, in dto.CalculateCostRequest) (*dto.CalculateCostResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantityProduced.LessThan(minQuantity) {
		return nil, domain.ErrInvalidInput
	}
	if in.WastagePercent.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	sku, err := uc.skuRepo.GetByID(ctx, in.SKUID)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.ErrNotFound
	}

	sellingPrice := sku.SuggestedPrice
	if in.SellingPrice != nil {
		sellingPrice = *in.SellingPrice
	}

	resp := &dto.CalculateCostResponse{
		SKUID:            sku.ID,
		Period:           in.Period,
		QuantityProduced: in.QuantityProduced,
		WastagePercent:   in.WastagePercent,
		SellingPrice:     sellingPrice,
	}

	if err := uc.directMaterial(ctx, sku.ID, in.QuantityProduced, resp); err != nil {
		return nil, err
	}
	if err := uc.labor(ctx, resp); err != nil {
		return nil, err
	}
	if err := uc.indirect(ctx, in.Period, resp); err != nil {
		return nil, err
	}
	if err := uc.freightAndTaxes(ctx, in.DestinationID, sku.PackageWeight, sellingPrice, in.QuantityProduced, resp); err != nil {
		return nil, err
	}

	totals := dcosting.Compose(dcosting.Components{
		DirectMaterial: resp.DirectMaterialCost,
		Labor:          resp.LaborCost,
		Indirect:       resp.IndirectCost,
		Freight:        resp.FreightCost,
		Tax:            resp.TaxCost,
	}, in.WastagePercent, in.QuantityProduced, sellingPrice)

	resp.WastageValue = totals.WastageValue
	resp.TotalCost = totals.TotalCost
	resp.UnitCost = totals.UnitCost
	resp.GrossMargin = totals.GrossMargin
	resp.GrossMarginPercent = totals.GrossMarginPercent

	variance, err := uc.variance(ctx, sku.ID, totals.UnitCost)
	if err != nil {
		return nil, err
	}
	if variance != nil {
		resp.Variance = &dto.VarianceDetail{
			PreviousUnitCost: variance.PreviousUnitCost,
			CurrentUnitCost:  variance.CurrentUnitCost,
			VariationPercent: variance.VariationPercent,
			Threshold:        variance.Threshold,
			Direction:        variance.Direction,
		}
	}

	saveRecord := in.SaveRecord == nil || *in.SaveRecord
	if saveRecord {
		if err := uc.persist(ctx, userID, in, sellingPrice, totals, variance, resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// directMaterial explode a ficha técnica: unit_cost × qty_por_unidade × qty
// produzida por linha. Linha cujo item de almoxarifado não existe é pulada
// (contribui zero) e marcada como skipped no detalhamento, com log de warn.
func (uc *CalculateUseCase) directMaterial(ctx context.Context, skuID string, qty decimal.Decimal, resp *dto.CalculateCostResponse) error {
	bomLines, err := uc.bomRepo.ListBySKU(ctx, skuID)
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, line := range bomLines {
		item, err := uc.itemRepo.GetByID(ctx, line.WarehouseItemID)
		if err != nil {
			return err
		}
		if item == nil {
			uc.log.Warn().
				Str("sku_id", skuID).
				Str("bom_item_id", line.ID).
				Str("warehouse_item_id", line.WarehouseItemID).
				Msg("linha de ficha técnica pulada: item de almoxarifado inexistente")
			resp.DirectMaterialLines = append(resp.DirectMaterialLines, dto.MaterialLineDetail{
				BOMItemID:       line.ID,
				ItemID:          line.WarehouseItemID,
				QuantityPerUnit: line.QuantityPerUnit,
				TotalQuantity:   line.QuantityPerUnit.Mul(qty),
				Status:          dto.LineStatusSkipped,
				Reason:          "item de almoxarifado não encontrado",
			})
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("linha de ficha técnica %s pulada: item %s não encontrado", line.ID, line.WarehouseItemID))
			continue
		}
		lineTotal := item.UnitCost.Mul(line.QuantityPerUnit).Mul(qty)
		total = total.Add(lineTotal)
		resp.DirectMaterialLines = append(resp.DirectMaterialLines, dto.MaterialLineDetail{
			BOMItemID:       line.ID,
			ItemID:          item.ID,
			ItemCode:        item.Code,
			ItemName:        item.Name,
			QuantityPerUnit: line.QuantityPerUnit,
			TotalQuantity:   line.QuantityPerUnit.Mul(qty),
			UnitCost:        item.UnitCost,
			LineTotal:       lineTotal,
			Status:          dto.LineStatusComputed,
		})
	}
	resp.DirectMaterialCost = total
	return nil
}

// labor soma o custo carregado de todos os funcionários ativos. O pool não
// depende de SKU nem de período: execuções consecutivas no mesmo período
// produzem o mesmo total (simplificação de alocação preservada).
func (uc *CalculateUseCase) labor(ctx context.Context, resp *dto.CalculateCostResponse) error {
	employees, err := uc.employeeRepo.ListActive(ctx)
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, e := range employees {
		cost := e.LoadedCost()
		total = total.Add(cost)
		resp.LaborLines = append(resp.LaborLines, dto.LaborLineDetail{
			EmployeeID: e.ID,
			Name:       e.Name,
			Sector:     e.Sector,
			Position:   e.Position,
			TotalCost:  cost,
		})
	}
	resp.LaborCost = total
	return nil
}

// indirect soma todos os lançamentos do razão do período, sem rateio por SKU.
func (uc *CalculateUseCase) indirect(ctx context.Context, period string, resp *dto.CalculateCostResponse) error {
	entries, err := uc.indirectRepo.ListByPeriod(ctx, period)
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Value)
		resp.IndirectLines = append(resp.IndirectLines, dto.IndirectLineDetail{
			Category:    e.Category,
			Description: e.Description,
			Value:       e.Value,
		})
	}
	resp.IndirectCost = total
	return nil
}

// freightAndTaxes avalia a regra de frete do destino (valor fixo ou fórmula
// sobre peso/valor) e a pilha de impostos. Fórmula inválida degrada o frete
// para zero com warn; nunca vira erro para o caller.
func (uc *CalculateUseCase) freightAndTaxes(ctx context.Context, destinationID string, packageWeight, sellingPrice, qty decimal.Decimal, resp *dto.CalculateCostResponse) error {
	if destinationID == "" {
		return nil
	}
	dest, err := uc.destRepo.GetByID(ctx, destinationID)
	if err != nil {
		return err
	}
	if dest == nil {
		return domain.ErrNotFound
	}

	weight := packageWeight.Mul(qty)
	value := sellingPrice.Mul(qty)

	freight := &dto.FreightDetail{
		DestinationID:   dest.ID,
		DestinationName: dest.Name,
		FreightType:     dest.FreightType,
		EstimatedWeight: weight,
		EstimatedValue:  value,
	}

	switch dest.FreightType {
	case entity.FreightTypeFormula:
		freight.Formula = dest.FreightFormula
		result, evalErr := dcosting.EvaluateFormula(dest.FreightFormula, dcosting.FormulaVars{
			Weight: weight,
			Value:  value,
		})
		if evalErr != nil {
			uc.log.Warn().
				Str("destination_id", dest.ID).
				Str("formula", dest.FreightFormula).
				Err(evalErr).
				Msg("fórmula de frete inválida: frete degradado para zero")
			freight.Value = decimal.Zero
			freight.Degraded = true
			freight.Reason = "fórmula de frete inválida"
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("fórmula de frete do destino %s inválida: frete assumido como zero", dest.Name))
		} else {
			freight.Value = result
		}
	default:
		freight.Value = dest.FreightValue
	}

	taxes := dcosting.EstimateTaxes(value,
		dest.ICMSPercent, dest.ICMSSTPercent, dest.PISPercent, dest.COFINSPercent, dest.IPIPercent)

	resp.Freight = freight
	resp.FreightCost = freight.Value
	resp.Taxes = &dto.TaxDetail{
		ICMS:   taxes.ICMS,
		ICMSST: taxes.ICMSST,
		PIS:    taxes.PIS,
		COFINS: taxes.COFINS,
		IPI:    taxes.IPI,
		Total:  taxes.Total,
	}
	resp.TaxCost = taxes.Total
	return nil
}

// variance compara o custo unitário novo contra o único último registro
// confirmado do SKU. Primeiro cálculo de um SKU nunca gera comparação.
func (uc *CalculateUseCase) variance(ctx context.Context, skuID string, unitCost decimal.Decimal) (*dcosting.VarianceResult, error) {
	prev, err := uc.recordRepo.LatestConfirmedBySKU(ctx, skuID)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, nil
	}
	return dcosting.CheckVariance(prev.UnitCost, unitCost, uc.alertThreshold(ctx)), nil
}

// alertThreshold lê o threshold das configurações; fallback para o default da
// aplicação quando a chave não existe ou não é numérica.
func (uc *CalculateUseCase) alertThreshold(ctx context.Context) decimal.Decimal {
	setting, err := uc.settingRepo.GetByKey(ctx, entity.SettingKeyAlertThreshold)
	if err != nil || setting == nil {
		return uc.defaultThreshold
	}
	if v, ok := setting.DecimalValue(); ok {
		return v
	}
	return uc.defaultThreshold
}

// persist grava o registro (status draft) e, quando a variação atingiu o
// threshold, o alerta correspondente — tudo em uma única transação.
func (uc *CalculateUseCase) persist(ctx context.Context, userID string, in dto.CalculateCostRequest, sellingPrice decimal.Decimal, totals dcosting.Totals, variance *dcosting.VarianceResult, resp *dto.CalculateCostResponse) error {
	detail, err := json.Marshal(dto.CostRecordDetail{
		DirectMaterial: resp.DirectMaterialLines,
		Labor:          resp.LaborLines,
		Indirect:       resp.IndirectLines,
		Freight:        resp.Freight,
		Taxes:          resp.Taxes,
	})
	if err != nil {
		return fmt.Errorf("marshal cost detail: %w", err)
	}

	now := time.Now()
	record := &entity.CostRecord{
		ID:                 uuid.New().String(),
		SKUID:              in.SKUID,
		Period:             in.Period,
		QuantityProduced:   in.QuantityProduced,
		DirectMaterialCost: resp.DirectMaterialCost,
		LaborCost:          resp.LaborCost,
		IndirectCost:       resp.IndirectCost,
		FreightCost:        resp.FreightCost,
		TaxCost:            resp.TaxCost,
		WastagePercent:     in.WastagePercent,
		WastageValue:       totals.WastageValue,
		TotalCost:          totals.TotalCost,
		UnitCost:           totals.UnitCost,
		SellingPrice:       sellingPrice,
		GrossMargin:        totals.GrossMargin,
		GrossMarginPercent: totals.GrossMarginPercent,
		Detail:             detail,
		Observations:       in.Observations,
		Status:             entity.CostRecordStatusDraft,
		CreatedBy:          userID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	var alertID string
	err = uc.txRunner.Run(ctx, func(
		recordRepo repository.CostRecordRepository,
		alertRepo repository.CostAlertRepository,
	) error {
		if err := recordRepo.Create(ctx, record); err != nil {
			return err
		}
		if variance != nil && variance.Exceeded {
			alert := &entity.CostAlert{
				ID:               uuid.New().String(),
				CostRecordID:     record.ID,
				SKUID:            in.SKUID,
				PreviousUnitCost: variance.PreviousUnitCost,
				CurrentUnitCost:  variance.CurrentUnitCost,
				VariationPercent: variance.VariationPercent,
				Threshold:        variance.Threshold,
				Direction:        variance.Direction,
				Status:           entity.AlertStatusNew,
				CreatedAt:        now,
				UpdatedAt:        now,
			}
			if err := alertRepo.Create(ctx, alert); err != nil {
				return err
			}
			alertID = alert.ID
		}
		return nil
	})
	if err != nil {
		return err
	}

	resp.RecordID = record.ID
	resp.RecordStatus = record.Status
	if alertID != "" && resp.Variance != nil {
		resp.Variance.AlertGenerated = true
		resp.Variance.AlertID = alertID
	}
	return nil
}
