package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"animal-shelter-api/internal/router"
)

func TestHTTP_EndToEnd_AdoptionFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	adopterID := "adopter-1"
	adminID := "admin-1"

	// 1) Cualquier usuario autenticado da de alta un animal
	animalID := createAnimal(t, ts.URL, adopterID, "user", map[string]any{
		"name":        "Milo",
		"species":     "dog",
		"breed":       "mixed",
		"age":         3,
		"description": "rescatado del parque",
		"status":      "available",
		"location":    "refugio norte",
	})

	// 2) Nombre duplicado => 409
	{
		st, body := doReq(t, ts.URL, "POST", "/animals", adopterID, "user", map[string]any{
			"name":        "Milo",
			"species":     "cat",
			"breed":       "siames",
			"age":         1,
			"description": "otro",
			"status":      "available",
			"location":    "refugio sur",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate name, got %d body=%s", st, string(body))
		}
	}

	// 3) Sin sesión no se crea nada
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals", "", "", map[string]any{"name": "X"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without session, got %d", st)
		}
	}

	// 4) El detalle es público
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/"+animalID, "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 public get, got %d body=%s", st, string(body))
		}
	}

	// 5) ID malformado => 400
	{
		st, _ := doReq(t, ts.URL, "GET", "/animals/not-a-uuid", "", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 malformed id, got %d", st)
		}
	}

	// 6) Search literal encuentra por substring
	{
		st, body := doReq(t, ts.URL, "GET", "/animals?search=mil", "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search, got %d", st)
		}
		var out []map[string]any
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode search: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 result, got %d", len(out))
		}
	}

	// 7) El adoptante crea la solicitud
	var requestID string
	{
		st, body := doReq(t, ts.URL, "POST", "/adoptions", adopterID, "user", map[string]any{
			"animal_id": animalID,
			"message":   "tengo patio",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create adoption, got %d body=%s", st, string(body))
		}
		var out map[string]any
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode adoption: %v", err)
		}
		requestID, _ = out["id"].(string)
		if out["status"] != "pending" {
			t.Fatalf("expected pending, got %v", out["status"])
		}
	}

	// 8) Un user común no puede aprobar
	{
		st, _ := doReq(t, ts.URL, "PUT", "/adoptions/"+requestID+"/status", adopterID, "user", map[string]any{
			"status": "approved",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 approve as user, got %d", st)
		}
	}

	// 9) Admin aprueba; la solicitud y el animal cambian de estado
	{
		st, body := doReq(t, ts.URL, "PUT", "/adoptions/"+requestID+"/status", adminID, "admin", map[string]any{
			"status": "approved",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 approve, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/animals/"+animalID, "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get after approve, got %d", st)
		}
		var out map[string]any
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode animal: %v", err)
		}
		if out["status"] != "adopted" {
			t.Fatalf("expected adopted after approve, got %v", out["status"])
		}
	}

	// 10) Re-aprobar es idempotente; pasar a rejected desde terminal => 409
	{
		st, _ := doReq(t, ts.URL, "PUT", "/adoptions/"+requestID+"/status", adminID, "admin", map[string]any{
			"status": "approved",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 idempotent approve, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "PUT", "/adoptions/"+requestID+"/status", adminID, "admin", map[string]any{
			"status": "rejected",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 terminal transition, got %d", st)
		}
	}

	// 11) El adoptante ve su solicitud en /user/adoptions
	{
		st, body := doReq(t, ts.URL, "GET", "/user/adoptions", adopterID, "user", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my adoptions, got %d", st)
		}
		var out []map[string]any
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode my adoptions: %v", err)
		}
		if len(out) != 1 || out[0]["status"] != "approved" {
			t.Fatalf("expected 1 approved request, got %+v", out)
		}
	}
}

func TestHTTP_EndToEnd_TreatmentRoleGate(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	animalID := createAnimal(t, ts.URL, "vet-1", "vet", map[string]any{
		"name":        "Luna",
		"species":     "cat",
		"breed":       "siames",
		"age":         2,
		"description": "en observación",
		"status":      "treatment",
		"location":    "refugio centro",
	})

	// user común no registra tratamientos
	{
		st, _ := doReq(t, ts.URL, "POST", "/treatments", "user-1", "user", map[string]any{
			"animal_id": animalID,
			"diagnosis": "otitis",
			"treatment": "gotas",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 treatment as user, got %d", st)
		}
	}

	// vet sí; la fecha la pone el servidor
	{
		st, body := doReq(t, ts.URL, "POST", "/treatments", "vet-1", "vet", map[string]any{
			"animal_id": animalID,
			"diagnosis": "otitis",
			"treatment": "gotas",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 treatment as vet, got %d body=%s", st, string(body))
		}
		var out map[string]any
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode treatment: %v", err)
		}
		if out["date"] == nil || out["date"] == "" {
			t.Fatalf("expected server date, got %+v", out)
		}
	}

	// mandar date explícito se rechaza (decode estricto)
	{
		st, _ := doReq(t, ts.URL, "POST", "/treatments", "vet-1", "vet", map[string]any{
			"animal_id": animalID,
			"diagnosis": "otitis",
			"treatment": "gotas",
			"date":      "2020-01-01T00:00:00Z",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 client date, got %d", st)
		}
	}

	// la lista del animal es pública
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/"+animalID+"/treatments", "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list treatments, got %d", st)
		}
		var out []map[string]any
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode treatments: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 treatment, got %d", len(out))
		}
	}
}

func createAnimal(t *testing.T, baseURL, userID, role string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animals", userID, role, payload)
	if st != http.StatusCreated {
		t.Fatalf("create animal: expected 201, got %d body=%s", st, string(body))
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode create animal: %v", err)
	}
	id, _ := out["id"].(string)
	if id == "" {
		t.Fatalf("create animal: missing id in %s", string(body))
	}
	return id
}

func doReq(t *testing.T, baseURL, method, path, userID, role string, payload map[string]any) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
		if role != "" {
			req.Header.Set("X-Debug-Role", role)
		}
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res.StatusCode, body
}
