package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrococo/custos-api/internal/application/usecase"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
	apphttp "github.com/agrococo/custos-api/internal/interfaces/http"
)

// ── fake em memória ───────────────────────────────────────────────────────────

type fakeDestinationRepo struct {
	repository.ShippingDestinationRepository
	dests map[string]*entity.ShippingDestination
}

func (f *fakeDestinationRepo) GetByID(_ context.Context, id string) (*entity.ShippingDestination, error) {
	return f.dests[id], nil
}

func (f *fakeDestinationRepo) Update(_ context.Context, d *entity.ShippingDestination) error {
	f.dests[d.ID] = d
	return nil
}

func buildDestinationApp(repo *fakeDestinationRepo) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewDestinationHandler(usecase.NewDestinationUseCase(repo))
	app.Put("/api/destinations/:id", handler.Update)
	app.Get("/api/destinations/:id", handler.GetByID)
	return app
}

func putDestination(t *testing.T, app *fiber.App, id string, body map[string]any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/api/destinations/"+id, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ── Update de recurso inexistente ─────────────────────────────────────────────

func TestDestinationUpdate_IDInexistente_Retorna404(t *testing.T) {
	app := buildDestinationApp(&fakeDestinationRepo{dests: map[string]*entity.ShippingDestination{}})

	resp := putDestination(t, app, "nao-existe", map[string]any{"name": "Porto de Santos"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"atualizar destino inexistente deve retornar 404, nunca 200 com corpo nulo")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
	assert.NotEqual(t, "null", string(body))
}

func TestDestinationUpdate_Existente_Retorna200(t *testing.T) {
	repo := &fakeDestinationRepo{dests: map[string]*entity.ShippingDestination{
		"dest-1": {
			ID:           "dest-1",
			Name:         "CD São Paulo",
			FreightType:  entity.FreightTypeFixed,
			FreightValue: decimal.NewFromInt(150),
			Active:       true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
	}}
	app := buildDestinationApp(repo)

	resp := putDestination(t, app, "dest-1", map[string]any{"name": "CD Campinas"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "CD Campinas", body["name"])
	assert.Equal(t, "CD Campinas", repo.dests["dest-1"].Name, "a mudança deve ser persistida")
}

func TestDestinationGetByID_IDInexistente_Retorna404(t *testing.T) {
	app := buildDestinationApp(&fakeDestinationRepo{dests: map[string]*entity.ShippingDestination{}})

	req := httptest.NewRequest(http.MethodGet, "/api/destinations/nao-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
