package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bersitedi/MyWorkoutPlanner/internal/catalog"
	"github.com/bersitedi/MyWorkoutPlanner/internal/errors"
	"github.com/bersitedi/MyWorkoutPlanner/internal/fitness"
	"github.com/bersitedi/MyWorkoutPlanner/internal/testhelpers"
)

func newTestService(t *testing.T, handler http.Handler) *catalog.Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	client := catalog.NewClient("test-key", logger).WithBaseURL(server.URL)
	return catalog.NewService(client, logger)
}

func writeExercises(t *testing.T, w http.ResponseWriter, exercises []map[string]any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(exercises); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestService_GetFromAPI(t *testing.T) {
	var gotKey, gotPath string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotPath = r.URL.Path
		writeExercises(t, w, []map[string]any{{
			"id":        "0032",
			"name":      "barbell bench press",
			"bodyPart":  "chest",
			"equipment": "barbell",
			"target":    "pectorals",
		}})
	}))

	ex, err := svc.Get(t.Context(), "Barbell Bench Press")
	if err != nil {
		t.Fatalf("get exercise: %v", err)
	}

	if got, want := gotKey, "test-key"; got != want {
		t.Errorf("got API key header %q, want %q", got, want)
	}
	if got, want := gotPath, "/exercises/name/barbell bench press"; got != want {
		t.Errorf("got path %q, want %q", got, want)
	}
	if got, want := ex.Name, "Barbell Bench Press"; got != want {
		t.Errorf("got name %q, want %q", got, want)
	}
	if got, want := ex.Level, "intermediate"; got != want {
		t.Errorf("got level %q, want %q", got, want)
	}
}

func TestService_GetPrefersLocalExercise(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("local exercises must not hit the API")
		w.WriteHeader(http.StatusInternalServerError)
	}))

	ex, err := svc.Get(t.Context(), "push-up")
	if err != nil {
		t.Fatalf("get exercise: %v", err)
	}
	if got, want := ex.Name, "Push-up"; got != want {
		t.Errorf("got name %q, want %q", got, want)
	}
}

func TestService_GetFallsBackWhenAPIDown(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := svc.Get(t.Context(), "Nonexistent Exercise")
	if !errors.Is(err, catalog.ErrExerciseNotFound) {
		t.Errorf("got error %v, want ErrExerciseNotFound", err)
	}
}

func TestService_GetByIDFromAPI(t *testing.T) {
	var gotPath string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"id":        "0032",
			"name":      "barbell bench press",
			"bodyPart":  "chest",
			"equipment": "barbell",
			"target":    "pectorals",
		}); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))

	ex, err := svc.GetByID(t.Context(), "0032")
	if err != nil {
		t.Fatalf("get exercise by id: %v", err)
	}

	if got, want := gotPath, "/exercises/exercise/0032"; got != want {
		t.Errorf("got path %q, want %q", got, want)
	}
	if got, want := ex.Name, "Barbell Bench Press"; got != want {
		t.Errorf("got name %q, want %q", got, want)
	}
}

func TestService_GetByIDPrefersLocalExercise(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("local exercises must not hit the API")
		w.WriteHeader(http.StatusInternalServerError)
	}))

	ex, err := svc.GetByID(t.Context(), "local-push-up")
	if err != nil {
		t.Fatalf("get exercise by id: %v", err)
	}
	if got, want := ex.Name, "Push-up"; got != want {
		t.Errorf("got name %q, want %q", got, want)
	}
}

func TestService_GetByIDSurfacesAPIFailure(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := svc.GetByID(t.Context(), "0032")
	if err == nil {
		t.Fatal("expected an error when the API is down")
	}
	if errors.Is(err, catalog.ErrExerciseNotFound) {
		t.Error("a transport failure must not masquerade as a missing exercise")
	}
}

func TestService_GetByIDWithoutClient(t *testing.T) {
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	svc := catalog.NewService(nil, logger)

	_, err := svc.GetByID(t.Context(), "no-such-id")
	if !errors.Is(err, catalog.ErrExerciseNotFound) {
		t.Errorf("got error %v, want ErrExerciseNotFound", err)
	}
}

func TestService_ListFallsBackWhenAPIDown(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	exercises := svc.List(t.Context())
	if len(exercises) == 0 {
		t.Fatal("expected the built-in list when the API is down")
	}
	for _, ex := range exercises {
		if ex.Name == "Push-up" {
			return
		}
	}
	t.Error("built-in list should contain Push-up")
}

func TestService_SearchMergesIndexes(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/exercises/name/press":
			writeExercises(t, w, []map[string]any{
				{"id": "1", "name": "overhead press", "bodyPart": "shoulders", "equipment": "barbell", "target": "delts"},
			})
		case "/exercises/target/press":
			// The same record from a second index must not duplicate.
			writeExercises(t, w, []map[string]any{
				{"id": "1", "name": "overhead press", "bodyPart": "shoulders", "equipment": "barbell", "target": "delts"},
				{"id": "2", "name": "leg press", "bodyPart": "upper legs", "equipment": "leverage machine", "target": "quads"},
			})
		default:
			http.NotFound(w, r)
		}
	}))

	exercises := svc.Search(t.Context(), "Press")
	if got, want := len(exercises), 2; got != want {
		t.Fatalf("got %d results, want %d", got, want)
	}
}

func TestService_SearchWithoutClientFiltersLocally(t *testing.T) {
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	svc := catalog.NewService(nil, logger)

	exercises := svc.Search(t.Context(), "cardio")
	if len(exercises) == 0 {
		t.Fatal("expected local matches for body part cardio")
	}
	for _, ex := range exercises {
		if ex.Type != fitness.TypeCardio && ex.BodyPart != "cardio" {
			t.Errorf("unexpected match %q for cardio search", ex.Name)
		}
	}
}
