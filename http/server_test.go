package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/progscout/progscout"
	progscouthttp "github.com/progscout/progscout/http"
	"github.com/progscout/progscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer(t *testing.T) {
	t.Parallel()

	t.Run("health", func(t *testing.T) {
		t.Parallel()

		s := progscouthttp.NewServer()
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("program list forwards query filters", func(t *testing.T) {
		t.Parallel()

		var got progscout.ProgramFilter
		s := progscouthttp.NewServer()
		s.ProgramService = &mock.ProgramService{
			FindProgramsFn: func(_ context.Context, filter progscout.ProgramFilter) ([]*progscout.Program, error) {
				got = filter
				return []*progscout.Program{{ID: "1", Title: "Go Course", URL: "https://example.com/go"}}, nil
			},
		}

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/programs?type=Course&mode=Online&cost=Free&country=australia&limit=5", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got.Type)
		assert.Equal(t, progscout.TypeCourse, *got.Type)
		require.NotNil(t, got.Mode)
		assert.Equal(t, progscout.ModeOnline, *got.Mode)
		require.NotNil(t, got.Cost)
		assert.Equal(t, progscout.CostFree, *got.Cost)
		require.NotNil(t, got.CountryContains)
		assert.Equal(t, "australia", *got.CountryContains)
		assert.Equal(t, 5, got.Limit)

		var body struct {
			Programs []*progscout.Program `json:"programs"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Programs, 1)
		assert.Equal(t, "Go Course", body.Programs[0].Title)
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		t.Parallel()

		s := progscouthttp.NewServer()
		s.ProgramService = &mock.ProgramService{
			FindProgramsFn: func(_ context.Context, _ progscout.ProgramFilter) ([]*progscout.Program, error) {
				return nil, nil
			},
		}

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/programs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"programs":[]}`, rec.Body.String())
	})

	t.Run("program show maps ENOTFOUND to 404", func(t *testing.T) {
		t.Parallel()

		s := progscouthttp.NewServer()
		s.ProgramService = &mock.ProgramService{
			FindProgramByIDFn: func(_ context.Context, id string) (*progscout.Program, error) {
				return nil, progscout.Errorf(progscout.ENOTFOUND, "program not found")
			},
		}

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/programs/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"program not found"}`, rec.Body.String())
	})

	t.Run("stats include snapshot domains when available", func(t *testing.T) {
		t.Parallel()

		s := progscouthttp.NewServer()
		s.ProgramService = &mock.ProgramService{
			StatsFn: func(_ context.Context) (*progscout.Stats, error) {
				return &progscout.Stats{Programs: 10, Approved: 3, Sources: 4}, nil
			},
		}
		s.SnapshotService = &mock.SnapshotService{
			CountDomainsFn: func(_ context.Context) (int, error) { return 4, nil },
		}

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"programs":10,"approved":3,"sources":4,"snapshotDomains":4}`, rec.Body.String())
	})

	t.Run("open serves over a real listener", func(t *testing.T) {
		t.Parallel()

		s := progscouthttp.NewServer()
		s.Addr = "127.0.0.1:0"
		require.NoError(t, s.Open())
		defer s.Close()

		resp, err := http.Get(s.URL() + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
