// handlers/sync.go - Offline draft sync API
package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/lucasmtn/obratrack/internal/drafts"
)

// syncResponse summarizes a sync batch
type syncResponse struct {
	Applied int             `json:"applied"`
	Failed  int             `json:"failed"`
	Results []drafts.Result `json:"results"`
}

// SyncDrafts accepts a JSON array of queued demand submissions and
// applies them sequentially. Always answers JSON; per-draft failures
// are reported in the body, not as an HTTP error.
func (h *Handler) SyncDrafts(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "unable to read body", http.StatusBadRequest)
		return
	}

	results, err := drafts.Sync(h.DB, body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := syncResponse{Results: results}
	for _, res := range results {
		if res.Applied {
			resp.Applied++
		} else {
			resp.Failed++
		}
	}
	log.Printf("[SYNC] %d drafts: %d applied, %d failed", len(results), resp.Applied, resp.Failed)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
