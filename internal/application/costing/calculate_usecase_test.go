package costing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcosting "github.com/agrococo/custos-api/internal/application/costing"
	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/domain"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
	"github.com/agrococo/custos-api/pkg/logger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ── fakes em memória ──────────────────────────────────────────────────────────

type fakeSKURepo struct {
	repository.SKURepository
	skus map[string]*entity.SKU
}

func (f *fakeSKURepo) GetByID(_ context.Context, id string) (*entity.SKU, error) {
	return f.skus[id], nil
}

type fakeBOMRepo struct {
	repository.BOMItemRepository
	lines map[string][]*entity.BOMItem
}

func (f *fakeBOMRepo) ListBySKU(_ context.Context, skuID string) ([]*entity.BOMItem, error) {
	return f.lines[skuID], nil
}

type fakeItemRepo struct {
	repository.WarehouseItemRepository
	items map[string]*entity.WarehouseItem
}

func (f *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.WarehouseItem, error) {
	return f.items[id], nil
}

type fakeEmployeeRepo struct {
	repository.EmployeeRepository
	active []*entity.Employee
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]*entity.Employee, error) {
	return f.active, nil
}

type fakeIndirectRepo struct {
	repository.IndirectCostRepository
	byPeriod map[string][]*entity.IndirectCost
}

func (f *fakeIndirectRepo) ListByPeriod(_ context.Context, period string) ([]*entity.IndirectCost, error) {
	return f.byPeriod[period], nil
}

type fakeDestRepo struct {
	repository.ShippingDestinationRepository
	dests map[string]*entity.ShippingDestination
}

func (f *fakeDestRepo) GetByID(_ context.Context, id string) (*entity.ShippingDestination, error) {
	return f.dests[id], nil
}

type fakeSettingRepo struct {
	repository.CostSettingRepository
	settings map[string]*entity.CostSetting
}

func (f *fakeSettingRepo) GetByKey(_ context.Context, key string) (*entity.CostSetting, error) {
	return f.settings[key], nil
}

type fakeRecordRepo struct {
	repository.CostRecordRepository
	latestConfirmed map[string]*entity.CostRecord
	created         []*entity.CostRecord
}

func (f *fakeRecordRepo) LatestConfirmedBySKU(_ context.Context, skuID string) (*entity.CostRecord, error) {
	return f.latestConfirmed[skuID], nil
}

func (f *fakeRecordRepo) Create(_ context.Context, record *entity.CostRecord) error {
	f.created = append(f.created, record)
	return nil
}

type fakeAlertRepo struct {
	repository.CostAlertRepository
	created []*entity.CostAlert
}

func (f *fakeAlertRepo) Create(_ context.Context, alert *entity.CostAlert) error {
	f.created = append(f.created, alert)
	return nil
}

type fakeTxRunner struct {
	recordRepo *fakeRecordRepo
	alertRepo  *fakeAlertRepo
	runs       int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	recordRepo repository.CostRecordRepository,
	alertRepo repository.CostAlertRepository,
) error) error {
	f.runs++
	return fn(f.recordRepo, f.alertRepo)
}

// ── fixture ───────────────────────────────────────────────────────────────────

type engineFixture struct {
	uc         *appcosting.CalculateUseCase
	recordRepo *fakeRecordRepo
	alertRepo  *fakeAlertRepo
	txRunner   *fakeTxRunner
	settings   *fakeSettingRepo
	records    *fakeRecordRepo
}

// newFixture monta o motor com o cenário base: SKU "Óleo de Coco 500ml" com
// duas linhas de ficha técnica que somam 2.00/unidade de material direto.
func newFixture() *engineFixture {
	skuRepo := &fakeSKURepo{skus: map[string]*entity.SKU{
		"sku-1": {
			ID:             "sku-1",
			Code:           "OLEO-500",
			Description:    "Óleo de Coco 500ml",
			PackageWeight:  d("0.6"),
			SuggestedPrice: d("12.50"),
		},
	}}
	bomRepo := &fakeBOMRepo{lines: map[string][]*entity.BOMItem{
		"sku-1": {
			{ID: "bom-1", SKUID: "sku-1", WarehouseItemID: "item-1", QuantityPerUnit: d("0.5"), Unit: "kg"},
			{ID: "bom-2", SKUID: "sku-1", WarehouseItemID: "item-2", QuantityPerUnit: d("0.25"), Unit: "un"},
		},
	}}
	itemRepo := &fakeItemRepo{items: map[string]*entity.WarehouseItem{
		"item-1": {ID: "item-1", Code: "COCO-SECO", Name: "Coco seco", UnitCost: d("3.00")},
		"item-2": {ID: "item-2", Code: "FRASCO-500", Name: "Frasco 500ml", UnitCost: d("2.00")},
	}}
	recordRepo := &fakeRecordRepo{latestConfirmed: map[string]*entity.CostRecord{}}
	alertRepo := &fakeAlertRepo{}
	txRunner := &fakeTxRunner{recordRepo: recordRepo, alertRepo: alertRepo}
	settingRepo := &fakeSettingRepo{settings: map[string]*entity.CostSetting{}}

	uc := appcosting.NewCalculateUseCase(
		skuRepo,
		bomRepo,
		itemRepo,
		&fakeEmployeeRepo{},
		&fakeIndirectRepo{byPeriod: map[string][]*entity.IndirectCost{}},
		&fakeDestRepo{dests: map[string]*entity.ShippingDestination{
			"dest-fix": {
				ID: "dest-fix", Name: "Capital", FreightType: entity.FreightTypeFixed,
				FreightValue: d("150"),
				ICMSPercent:  d("18"), PISPercent: d("1.65"), COFINSPercent: d("7.6"),
			},
			"dest-formula": {
				ID: "dest-formula", Name: "Interior", FreightType: entity.FreightTypeFormula,
				FreightFormula: "peso * 0.5 + 10",
			},
			"dest-quebrado": {
				ID: "dest-quebrado", Name: "Litoral", FreightType: entity.FreightTypeFormula,
				FreightFormula: "peso ** frete",
			},
		}},
		settingRepo,
		recordRepo,
		txRunner,
		d("10"),
		logger.Nop(),
	)
	return &engineFixture{
		uc:         uc,
		recordRepo: recordRepo,
		alertRepo:  alertRepo,
		txRunner:   txRunner,
		settings:   settingRepo,
		records:    recordRepo,
	}
}

func baseRequest() dto.CalculateCostRequest {
	return dto.CalculateCostRequest{
		SKUID:            "sku-1",
		Period:           "2025-03",
		QuantityProduced: d("100"),
	}
}

// ── material direto + composição ─────────────────────────────────────────────

func TestExecute_MaterialDiretoExplodeFichaTecnica(t *testing.T) {
	f := newFixture()
	in := baseRequest()
	in.SellingPrice = ptr(d("0"))

	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	// 0.5 kg × 3.00 × 100 + 0.25 un × 2.00 × 100 = 150 + 50 = 200
	assert.True(t, resp.DirectMaterialCost.Equal(d("200")), "direto = %s", resp.DirectMaterialCost)
	assert.True(t, resp.TotalCost.Equal(d("200")))
	assert.True(t, resp.UnitCost.Equal(d("2")), "unitário = %s", resp.UnitCost)
	require.Len(t, resp.DirectMaterialLines, 2)
	assert.Equal(t, dto.LineStatusComputed, resp.DirectMaterialLines[0].Status)
	assert.True(t, resp.DirectMaterialLines[0].LineTotal.Equal(d("150")))
}

func TestExecute_FichaTecnicaVazia_MaterialDiretoZero(t *testing.T) {
	f := newFixtureWithBOM(&fakeBOMRepo{lines: map[string][]*entity.BOMItem{}})
	in := baseRequest()
	in.SellingPrice = ptr(d("0"))

	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	assert.True(t, resp.DirectMaterialCost.IsZero(),
		"SKU sem ficha técnica deve custar zero de material direto")
	assert.Empty(t, resp.DirectMaterialLines)
	assert.Empty(t, resp.Warnings)
	assert.True(t, resp.TotalCost.IsZero())
}

func TestExecute_DesperdicioGlobalSobreSubtotal(t *testing.T) {
	f := newFixture()
	in := baseRequest()
	in.WastagePercent = d("10")
	in.SellingPrice = ptr(d("0"))

	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	assert.True(t, resp.WastageValue.Equal(d("20")))
	assert.True(t, resp.TotalCost.Equal(d("220")))
	assert.True(t, resp.UnitCost.Equal(d("2.2")), "unitário = %s", resp.UnitCost)
}

func TestExecute_LinhaSemItemDeAlmoxarifadoEPulada(t *testing.T) {
	// segunda linha aponta para item inexistente
	bomRepo := &fakeBOMRepo{lines: map[string][]*entity.BOMItem{
		"sku-1": {
			{ID: "bom-1", SKUID: "sku-1", WarehouseItemID: "item-1", QuantityPerUnit: d("0.5")},
			{ID: "bom-x", SKUID: "sku-1", WarehouseItemID: "item-fantasma", QuantityPerUnit: d("1")},
		},
	}}
	f2 := newFixtureWithBOM(bomRepo)

	in := baseRequest()
	in.SellingPrice = ptr(d("0"))
	resp, err := f2.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	// só a primeira linha contribui: 0.5 × 3.00 × 100 = 150
	assert.True(t, resp.DirectMaterialCost.Equal(d("150")))
	require.Len(t, resp.DirectMaterialLines, 2)
	assert.Equal(t, dto.LineStatusSkipped, resp.DirectMaterialLines[1].Status)
	assert.NotEmpty(t, resp.DirectMaterialLines[1].Reason)
	assert.NotEmpty(t, resp.Warnings)
}

// ── mão de obra e indiretos ──────────────────────────────────────────────────

func TestExecute_PoolDeMaoDeObraSomaEncargosHabilitados(t *testing.T) {
	employees := []*entity.Employee{
		{
			ID: "emp-1", Name: "Maria", Sector: "Produção", Position: "Operadora", Active: true,
			BaseSalary:  d("2000"),
			FGTSEnabled: true, FGTSPercent: d("8"),
			INSSEnabled: true, INSSPercent: d("20"),
		},
		{
			ID: "emp-2", Name: "João", Sector: "Produção", Position: "Auxiliar", Active: true,
			BaseSalary:        d("1500"),
			OtherCostsEnabled: true, OtherCostsValue: d("100"),
		},
	}
	f2 := newFixtureWithEmployees(employees)

	in := baseRequest()
	in.SellingPrice = ptr(d("0"))
	resp, err := f2.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	// Maria: 2000 + 160 + 400 = 2560; João: 1500 + 100 = 1600
	assert.True(t, resp.LaborCost.Equal(d("4160")), "mão de obra = %s", resp.LaborCost)
	require.Len(t, resp.LaborLines, 2)
	assert.True(t, resp.LaborLines[0].TotalCost.Equal(d("2560")))
}

func TestExecute_IndiretosSomamApenasOPeriodo(t *testing.T) {
	indirect := &fakeIndirectRepo{byPeriod: map[string][]*entity.IndirectCost{
		"2025-03": {
			{ID: "ind-1", Period: "2025-03", Category: "energia", Value: d("800")},
			{ID: "ind-2", Period: "2025-03", Category: "manutenção", Value: d("200")},
		},
		"2025-02": {
			{ID: "ind-3", Period: "2025-02", Category: "energia", Value: d("9999")},
		},
	}}
	f := newFixtureWithIndirect(indirect)

	in := baseRequest()
	in.SellingPrice = ptr(d("0"))
	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	assert.True(t, resp.IndirectCost.Equal(d("1000")))
	assert.Len(t, resp.IndirectLines, 2)
}

// ── frete e impostos ─────────────────────────────────────────────────────────

func TestExecute_FreteFixoEImpostosDoDestino(t *testing.T) {
	f := newFixture()
	in := baseRequest()
	in.DestinationID = "dest-fix"
	in.SellingPrice = ptr(d("10")) // valor estimado = 1000

	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	assert.True(t, resp.FreightCost.Equal(d("150")))
	require.NotNil(t, resp.Taxes)
	// 18% + 1.65% + 7.6% de 1000 = 272.5
	assert.True(t, resp.TaxCost.Equal(d("272.5")), "impostos = %s", resp.TaxCost)
	assert.True(t, resp.Taxes.ICMS.Equal(d("180")))
}

func TestExecute_FreteFormulaSobrePesoEValor(t *testing.T) {
	f := newFixture()
	in := baseRequest()
	in.DestinationID = "dest-formula"
	in.SellingPrice = ptr(d("0"))

	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	// peso = 0.6 × 100 = 60; frete = 60 × 0.5 + 10 = 40
	assert.True(t, resp.FreightCost.Equal(d("40")), "frete = %s", resp.FreightCost)
	require.NotNil(t, resp.Freight)
	assert.False(t, resp.Freight.Degraded)
}

func TestExecute_FormulaInvalidaDegradaFreteParaZero(t *testing.T) {
	f := newFixture()
	in := baseRequest()
	in.DestinationID = "dest-quebrado"
	in.SellingPrice = ptr(d("0"))

	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err, "fórmula inválida nunca vira erro para o caller")

	assert.True(t, resp.FreightCost.IsZero())
	require.NotNil(t, resp.Freight)
	assert.True(t, resp.Freight.Degraded)
	assert.NotEmpty(t, resp.Warnings)
	// o registro ainda é gravado normalmente
	assert.NotEmpty(t, resp.RecordID)
}

func TestExecute_DestinoInexistenteFalha(t *testing.T) {
	f := newFixture()
	in := baseRequest()
	in.DestinationID = "dest-nao-existe"

	_, err := f.uc.Execute(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── variação e alertas ───────────────────────────────────────────────────────

func TestExecute_VariacaoAcimaDoThresholdGeraAlerta(t *testing.T) {
	f := newFixture()
	f.records.latestConfirmed["sku-1"] = &entity.CostRecord{
		ID: "rec-old", SKUID: "sku-1", UnitCost: d("1.60"),
		Status: entity.CostRecordStatusConfirmed,
	}

	in := baseRequest()
	in.SellingPrice = ptr(d("0"))
	// unitário novo = 2.00 → +25% sobre 1.60
	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	require.NotNil(t, resp.Variance)
	assert.True(t, resp.Variance.VariationPercent.Equal(d("25")), "variação = %s", resp.Variance.VariationPercent)
	assert.Equal(t, entity.AlertDirectionIncrease, resp.Variance.Direction)
	assert.True(t, resp.Variance.AlertGenerated)

	require.Len(t, f.alertRepo.created, 1)
	alert := f.alertRepo.created[0]
	assert.Equal(t, entity.AlertStatusNew, alert.Status)
	assert.True(t, alert.Threshold.Equal(d("10")))
	assert.Equal(t, resp.RecordID, alert.CostRecordID)
}

func TestExecute_VariacaoAbaixoDoThresholdNaoGeraAlerta(t *testing.T) {
	f := newFixture()
	f.records.latestConfirmed["sku-1"] = &entity.CostRecord{
		ID: "rec-old", SKUID: "sku-1", UnitCost: d("1.9512195121951220"),
		Status: entity.CostRecordStatusConfirmed,
	}

	in := baseRequest()
	in.SellingPrice = ptr(d("0"))
	// variação ≈ +2.5% < 10%
	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	require.NotNil(t, resp.Variance)
	assert.False(t, resp.Variance.AlertGenerated)
	assert.Empty(t, f.alertRepo.created)
}

func TestExecute_PrimeiroCalculoNuncaAlerta(t *testing.T) {
	f := newFixture()

	in := baseRequest()
	in.SellingPrice = ptr(d("0"))
	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	assert.Nil(t, resp.Variance)
	assert.Empty(t, f.alertRepo.created)
}

func TestExecute_ThresholdVemDasConfiguracoes(t *testing.T) {
	f := newFixture()
	f.settings.settings[entity.SettingKeyAlertThreshold] = &entity.CostSetting{
		Key: entity.SettingKeyAlertThreshold, Type: entity.SettingTypePercent, Value: "30",
	}
	f.records.latestConfirmed["sku-1"] = &entity.CostRecord{
		ID: "rec-old", SKUID: "sku-1", UnitCost: d("1.60"),
		Status: entity.CostRecordStatusConfirmed,
	}

	in := baseRequest()
	in.SellingPrice = ptr(d("0"))
	// +25% < threshold configurado de 30%
	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	require.NotNil(t, resp.Variance)
	assert.True(t, resp.Variance.Threshold.Equal(d("30")))
	assert.False(t, resp.Variance.AlertGenerated)
	assert.Empty(t, f.alertRepo.created)
}

// ── persistência ─────────────────────────────────────────────────────────────

func TestExecute_GravaRegistroDraftNaTransacao(t *testing.T) {
	f := newFixture()
	in := baseRequest()
	in.SellingPrice = ptr(d("12.50"))
	in.Observations = "lote piloto"

	resp, err := f.uc.Execute(context.Background(), "user-7", in)
	require.NoError(t, err)

	assert.Equal(t, 1, f.txRunner.runs)
	require.Len(t, f.recordRepo.created, 1)
	rec := f.recordRepo.created[0]
	assert.Equal(t, entity.CostRecordStatusDraft, rec.Status)
	assert.Equal(t, "user-7", rec.CreatedBy)
	assert.Equal(t, "lote piloto", rec.Observations)
	assert.True(t, rec.TotalCost.Equal(resp.TotalCost))
	assert.NotEmpty(t, rec.Detail)
	assert.Equal(t, rec.ID, resp.RecordID)
}

func TestExecute_SaveRecordFalseNaoPersiste(t *testing.T) {
	f := newFixture()
	in := baseRequest()
	save := false
	in.SaveRecord = &save
	in.SellingPrice = ptr(d("0"))

	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	assert.Empty(t, resp.RecordID)
	assert.Equal(t, 0, f.txRunner.runs)
	assert.Empty(t, f.recordRepo.created)
}

func TestExecute_PrecoDeVendaCaiParaSugeridoDoSKU(t *testing.T) {
	f := newFixture()
	in := baseRequest() // sem SellingPrice

	resp, err := f.uc.Execute(context.Background(), "user-1", in)
	require.NoError(t, err)

	assert.True(t, resp.SellingPrice.Equal(d("12.50")))
	// margem = 12.50 − 2.00 = 10.50; percentual = 84%
	assert.True(t, resp.GrossMargin.Equal(d("10.5")), "margem = %s", resp.GrossMargin)
	assert.True(t, resp.GrossMarginPercent.Equal(d("84")), "margem %% = %s", resp.GrossMarginPercent)
}

// ── validação ────────────────────────────────────────────────────────────────

func TestExecute_ValidacaoDeEntrada(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name   string
		mutate func(*dto.CalculateCostRequest)
	}{
		{"sem sku", func(r *dto.CalculateCostRequest) { r.SKUID = "" }},
		{"período inválido", func(r *dto.CalculateCostRequest) { r.Period = "03/2025" }},
		{"quantidade zero", func(r *dto.CalculateCostRequest) { r.QuantityProduced = decimal.Zero }},
		{"quantidade negativa", func(r *dto.CalculateCostRequest) { r.QuantityProduced = d("-5") }},
		{"desperdício negativo", func(r *dto.CalculateCostRequest) { r.WastagePercent = d("-1") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseRequest()
			tc.mutate(&in)
			_, err := f.uc.Execute(context.Background(), "user-1", in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestExecute_SKUInexistente(t *testing.T) {
	f := newFixture()
	in := baseRequest()
	in.SKUID = "sku-fantasma"

	_, err := f.uc.Execute(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── helpers de fixture ───────────────────────────────────────────────────────

func ptr(v decimal.Decimal) *decimal.Decimal { return &v }

func newFixtureWithBOM(bomRepo *fakeBOMRepo) *engineFixture {
	f := newFixture()
	return rebuild(f, bomRepo, nil, nil)
}

func newFixtureWithEmployees(employees []*entity.Employee) *engineFixture {
	f := newFixture()
	return rebuild(f, nil, &fakeEmployeeRepo{active: employees}, nil)
}

func newFixtureWithIndirect(indirect *fakeIndirectRepo) *engineFixture {
	f := newFixture()
	return rebuild(f, nil, nil, indirect)
}

// rebuild remonta o motor trocando só os repositórios informados.
func rebuild(f *engineFixture, bomRepo *fakeBOMRepo, employeeRepo *fakeEmployeeRepo, indirect *fakeIndirectRepo) *engineFixture {
	skuRepo := &fakeSKURepo{skus: map[string]*entity.SKU{
		"sku-1": {
			ID:             "sku-1",
			Code:           "OLEO-500",
			Description:    "Óleo de Coco 500ml",
			PackageWeight:  d("0.6"),
			SuggestedPrice: d("12.50"),
		},
	}}
	if bomRepo == nil {
		bomRepo = &fakeBOMRepo{lines: map[string][]*entity.BOMItem{
			"sku-1": {
				{ID: "bom-1", SKUID: "sku-1", WarehouseItemID: "item-1", QuantityPerUnit: d("0.5"), Unit: "kg"},
				{ID: "bom-2", SKUID: "sku-1", WarehouseItemID: "item-2", QuantityPerUnit: d("0.25"), Unit: "un"},
			},
		}}
	}
	if employeeRepo == nil {
		employeeRepo = &fakeEmployeeRepo{}
	}
	if indirect == nil {
		indirect = &fakeIndirectRepo{byPeriod: map[string][]*entity.IndirectCost{}}
	}
	itemRepo := &fakeItemRepo{items: map[string]*entity.WarehouseItem{
		"item-1": {ID: "item-1", Code: "COCO-SECO", Name: "Coco seco", UnitCost: d("3.00")},
		"item-2": {ID: "item-2", Code: "FRASCO-500", Name: "Frasco 500ml", UnitCost: d("2.00")},
	}}

	uc := appcosting.NewCalculateUseCase(
		skuRepo,
		bomRepo,
		itemRepo,
		employeeRepo,
		indirect,
		&fakeDestRepo{dests: map[string]*entity.ShippingDestination{}},
		f.settings,
		f.recordRepo,
		f.txRunner,
		d("10"),
		logger.Nop(),
	)
	f.uc = uc
	return f
}
