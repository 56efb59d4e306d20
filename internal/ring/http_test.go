package ring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxlab/boxing-platform/internal/boxer"
)

type fakeRegistry struct {
	boxers map[int64]boxer.Boxer
}

func (f *fakeRegistry) GetByID(ctx context.Context, id int64) (boxer.Boxer, error) {
	b, ok := f.boxers[id]
	if !ok {
		return boxer.Boxer{}, boxer.ErrNotFound
	}
	return b, nil
}

func (f *fakeRegistry) GetByName(ctx context.Context, name string) (boxer.Boxer, error) {
	for _, b := range f.boxers {
		if b.Name == name {
			return b, nil
		}
	}
	return boxer.Boxer{}, boxer.ErrNotFound
}

func newTestHandlers() (*HTTPHandlers, *Ring) {
	registry := &fakeRegistry{boxers: map[int64]boxer.Boxer{
		1: {ID: 1, Name: "Ali", Weight: 210},
		2: {ID: 2, Name: "Frazier", Weight: 205},
		3: {ID: 3, Name: "Foreman", Weight: 220},
	}}
	r := New()
	return NewHTTPHandlers(r, registry, zerolog.Nop()), r
}

func enterBody(id int64) *strings.Reader {
	payload, _ := json.Marshal(EnterRingRequest{BoxerID: id})
	return strings.NewReader(string(payload))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestEnterRing(t *testing.T) {
	h, _ := newTestHandlers()

	rec := httptest.NewRecorder()
	h.EnterRing(rec, httptest.NewRequest(http.MethodPost, "/enter-ring", enterBody(1)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(1), body["occupants"])
}

func TestEnterRingByName(t *testing.T) {
	h, r := newTestHandlers()

	payload, _ := json.Marshal(EnterRingRequest{Name: "Frazier"})
	rec := httptest.NewRecorder()
	h.EnterRing(rec, httptest.NewRequest(http.MethodPost, "/enter-ring", strings.NewReader(string(payload))))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{2}, r.Occupants())
}

func TestEnterRingUnknownBoxer(t *testing.T) {
	h, _ := newTestHandlers()

	rec := httptest.NewRecorder()
	h.EnterRing(rec, httptest.NewRequest(http.MethodPost, "/enter-ring", enterBody(99)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeBody(t, rec)["error"])
}

func TestEnterRingFull(t *testing.T) {
	h, _ := newTestHandlers()

	for _, id := range []int64{1, 2} {
		rec := httptest.NewRecorder()
		h.EnterRing(rec, httptest.NewRequest(http.MethodPost, "/enter-ring", enterBody(id)))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.EnterRing(rec, httptest.NewRequest(http.MethodPost, "/enter-ring", enterBody(3)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ring_full", decodeBody(t, rec)["error"])
}

func TestEnterRingDuplicate(t *testing.T) {
	h, _ := newTestHandlers()

	rec := httptest.NewRecorder()
	h.EnterRing(rec, httptest.NewRequest(http.MethodPost, "/enter-ring", enterBody(1)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.EnterRing(rec, httptest.NewRequest(http.MethodPost, "/enter-ring", enterBody(1)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "already_in_ring", decodeBody(t, rec)["error"])
}

func TestGetBoxersInsertionOrder(t *testing.T) {
	h, r := newTestHandlers()
	require.NoError(t, r.Enter(2))
	require.NoError(t, r.Enter(1))

	rec := httptest.NewRecorder()
	h.GetBoxers(rec, httptest.NewRequest(http.MethodGet, "/get-boxers", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	boxers := body["boxers"].([]any)
	require.Len(t, boxers, 2)
	assert.Equal(t, "Frazier", boxers[0].(map[string]any)["name"])
	assert.Equal(t, "Ali", boxers[1].(map[string]any)["name"])
}

func TestClearBoxersIdempotent(t *testing.T) {
	h, r := newTestHandlers()
	require.NoError(t, r.Enter(1))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ClearBoxers(rec, httptest.NewRequest(http.MethodGet, "/clear-boxers", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", decodeBody(t, rec)["status"])
	}
	assert.Empty(t, r.Occupants())
}
