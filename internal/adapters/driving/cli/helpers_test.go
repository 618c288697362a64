package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

const placesReply = `{"ok":true,"all_places":[
	{"name":"강남역","address":"서울 강남구","lat":37.4979,"lon":127.0276},
	{"name":"강남구청","address":"서울 강남구 학동로","lat":37.5172,"lon":127.0473}],
	"taxi":{"duration_min":23,"taxi_fare":15800,"distance_meter":12300}}`

// fakeBackend is an httptest server speaking the mirror API.
type fakeBackend struct {
	*httptest.Server
	requests atomic.Int32
	commutes chan domain.CommuteRequest
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{commutes: make(chan domain.CommuteRequest, 4)}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/search_destination", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, placesReply)
	})
	mux.HandleFunc("/api/search_bus_stop", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("nodeId") != "" {
			io.WriteString(w, `{"ok":true,"eta_min":3,"arrivals":[{"routeNo":146,"endNodeNm":"상계동","arrTimeMin":3}]}`)
			return
		}
		io.WriteString(w, `{"ok":true,"all_stops":[{"nodeId":"N1","nodeNm":"역삼역","nodeNo":22001}]}`)
	})
	mux.HandleFunc("/api/search_subway_station", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("stationId") != "" {
			io.WriteString(w, `{"ok":true,"dayType":"01","schedule":{"U":[{"depTime":"0812","endSubwayStationNm":"성수","eta_min":4}],"D":[]}}`)
			return
		}
		io.WriteString(w, `{"ok":true,"all_stations":[{"subwayStationId":"S1","subwayStationName":"강남","subwayRouteName":"2호선"}]}`)
	})
	mux.HandleFunc("/api/commute_probability", func(w http.ResponseWriter, r *http.Request) {
		var req domain.CommuteRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		fb.commutes <- req
		io.WriteString(w, `{"ok":true,"now":"08:10","arrive_hhmm":"09:00","time_budget_min":50,"probabilities":{
			"taxi":{"ok":true,"p_on_time":0.95,"mean_min":23},
			"bus":{"ok":true,"p_on_time":0.6},
			"subway":{"ok":true,"p_on_time":0.8}}}`)
	})
	mux.HandleFunc("/api/voice_destination", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"ok":true,"speech_text":"강남역","all_places":[{"name":"강남역","address":"서울 강남구","lat":37.4979,"lon":127.0276}]}`)
	})
	mux.HandleFunc("/api/interaction", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	fb.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(fb.Close)
	return fb
}

// resetFlags restores every flag variable; cobra keeps them between runs.
func resetFlags() {
	verbose = false
	configDir = ""
	backendURL = ""
	localeFlag = ""
	envFilePath = ""
	noConfig = false
	searchJSON = false
	searchPick = 0
	commuteArrive = ""
	commuteTo = ""
	commutePick = 1
	commuteJSON = false
	voicePick = 0
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)
	t.Setenv(file.EnvBackendURL, "")
	t.Setenv(file.EnvLocale, "")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// runAgainst runs a command wired to fb with a throwaway config dir.
func runAgainst(t *testing.T, fb *fakeBackend, args ...string) (string, error) {
	t.Helper()
	base := []string{"--backend", fb.URL, "--config-dir", t.TempDir()}
	return executeCommand(t, append(base, args...)...)
}
