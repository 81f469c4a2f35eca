package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depscan/pkg/cache"
	"github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/observability"
	"github.com/matzehuels/depscan/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
	srv := httptest.NewServer(New(runner, logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/v1/extract", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestExtract(t *testing.T) {
	srv := newTestServer(t)
	body := `{"path": "ios/Podfile", "content": "source 'https://cdn.example/specs'\npod 'A', '1.2.3'\npod 'C', :path => '../local'\n"}`

	resp := post(t, srv, body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		RunID string `json:"runId"`
		File  struct {
			Manager     string `json:"manager"`
			PackageFile struct {
				Deps []struct {
					PackageName  string   `json:"packageName"`
					Datasource   string   `json:"datasource"`
					CurrentValue string   `json:"currentValue"`
					SkipReason   string   `json:"skipReason"`
					RegistryURLs []string `json:"registryUrls"`
				} `json:"deps"`
			} `json:"packageFile"`
		} `json:"file"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}

	if out.RunID == "" {
		t.Error("runId should be set")
	}
	if out.File.Manager != "cocoapods" {
		t.Errorf("manager = %q", out.File.Manager)
	}
	deps := out.File.PackageFile.Deps
	if len(deps) != 2 {
		t.Fatalf("got %d deps, want 2", len(deps))
	}
	if deps[0].Datasource != "pod" || deps[0].CurrentValue != "1.2.3" || len(deps[0].RegistryURLs) != 1 {
		t.Errorf("A = %+v", deps[0])
	}
	if deps[1].SkipReason != "path-dependency" {
		t.Errorf("C = %+v", deps[1])
	}
}

func TestExtract_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   errors.Code
	}{
		{"bad json", `{`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"unknown field", `{"path": "Podfile", "content": "", "extra": 1}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"absolute path", `{"path": "/etc/Podfile", "content": ""}`, http.StatusBadRequest, errors.ErrCodeInvalidPath},
		{"directory path", `{"path": ".", "content": ""}`, http.StatusBadRequest, errors.ErrCodeInvalidManifest},
		{"traversal", `{"path": "../Podfile", "content": ""}`, http.StatusBadRequest, errors.ErrCodeInvalidPath},
		{"unknown manager", `{"path": "Podfile", "content": "", "manager": "carthage"}`, http.StatusBadRequest, errors.ErrCodeInvalidManager},
		{"unsupported file", `{"path": "README.md", "content": "# hi"}`, http.StatusUnprocessableEntity, errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var body errorBody
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestManagers(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/v1/managers")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var out struct {
		Managers []ManagerInfo `json:"managers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	names := make(map[string]ManagerInfo)
	for _, m := range out.Managers {
		names[m.Name] = m
	}
	if m, ok := names["cocoapods"]; !ok || !m.Enabled || !m.Extractor {
		t.Errorf("cocoapods = %+v", m)
	}
	if m, ok := names["conan"]; !ok || m.Enabled || m.Extractor {
		t.Errorf("conan = %+v", m)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidPath, http.StatusBadRequest},
		{errors.ErrCodeFileNotFound, http.StatusNotFound},
		{errors.ErrCodeUnsupported, http.StatusUnprocessableEntity},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{errors.ErrCodeNetwork, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestStats(t *testing.T) {
	t.Cleanup(observability.Reset)
	logger := log.New(io.Discard)
	counters := observability.NewCounters()
	counters.Register()

	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
	srv := httptest.NewServer(New(runner, logger).WithCounters(counters).Handler())
	defer srv.Close()

	resp := post(t, srv, `{"path": "Podfile", "content": "pod 'A', '1.0'\n"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("extract status = %d", resp.StatusCode)
	}

	resp, err := http.Get(srv.URL + "/v1/stats")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var s observability.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		t.Fatal(err)
	}
	if s.Extractions != 1 || s.Dependencies != 1 || s.Responses["2xx"] < 1 {
		t.Errorf("stats = %+v", s)
	}
}

func TestStats_Disabled(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/v1/stats")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404 without counters", resp.StatusCode)
	}
}
