package httpadapter

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/nitinkv/docvault/internal/core/domain"
)

func (rt *Router) requestOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MobileNumber string `json:"mobile_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	if err := rt.auth.RequestOTP(r.Context(), req.MobileNumber); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "otp_sent"})
}

func (rt *Router) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MobileNumber string `json:"mobile_number"`
		OTP          string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	token, err := rt.auth.VerifyOTP(r.Context(), req.MobileNumber, req.OTP)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

type categoryEntry struct {
	Major  string   `json:"major"`
	Minors []string `json:"minors"`
}

// listCategories serves the static taxonomy so clients can render the
// cascading major/minor pickers without hardcoding it.
func (rt *Router) listCategories(w http.ResponseWriter, _ *http.Request) {
	majors := make([]string, 0, len(domain.DefaultTaxonomy))
	for major := range domain.DefaultTaxonomy {
		majors = append(majors, major)
	}
	sort.Strings(majors)

	entries := make([]categoryEntry, 0, len(majors))
	for _, major := range majors {
		selector := domain.NewCategorySelector(nil)
		selector.SetMajor(major)
		entries = append(entries, categoryEntry{Major: major, Minors: selector.MinorOptions()})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": entries})
}

func (rt *Router) loadTags(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Term string `json:"term"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	tags, err := rt.tagLoader.Load(r.Context(), req.Term, r.Header.Get(tokenHeader))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": tags})
}
