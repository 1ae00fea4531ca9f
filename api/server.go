package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/matt-g-everett/animtx/stream"
)

// Api serves read-only animation state over HTTP.
type Api struct {
	addr       string
	controller *stream.Controller
}

// NewApi creates an instance of an Api.
func NewApi(addr string, controller *stream.Controller) *Api {
	a := new(Api)
	a.addr = addr
	if a.addr == "" {
		a.addr = ":3000"
	}
	a.controller = controller
	return a
}

// Serve blocks, handling status and preview requests.
func (a *Api) Serve() {
	http.HandleFunc("/status", a.handleStatus)
	http.HandleFunc("/preview", a.handlePreview)

	log.Println("Listening...")
	http.ListenAndServe(a.addr, nil)
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a.controller.Snapshot())
}

func (a *Api) handlePreview(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	n := 32
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "n must be an integer", http.StatusBadRequest)
			return
		}
		n = parsed
	}

	samples, err := a.controller.Preview(name, n)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(samples)
}
