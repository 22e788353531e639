package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nitinkv/docvault/internal/core/domain"
)

const maxUploadMemory = 32 << 20

type searchRequest struct {
	MajorHead string   `json:"major_head"`
	MinorHead string   `json:"minor_head"`
	Tags      []string `json:"tags"`
	FromDate  string   `json:"from_date"`
	ToDate    string   `json:"to_date"`
	Search    string   `json:"search"`
	Start     int      `json:"start"`
	Length    int      `json:"length"`
}

func (rt *Router) searchDocuments(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	category, err := resolveCategory(req.MajorHead, req.MinorHead)
	if err != nil {
		writeError(w, err)
		return
	}

	tagSet := domain.NewTagSet()
	for _, raw := range req.Tags {
		tagSet.AddFromInput(raw)
	}

	dates, err := resolveDateRange(req.FromDate, req.ToDate)
	if err != nil {
		writeError(w, err)
		return
	}

	query, err := rt.searcher.Build(category, tagSet.Selected(), dates, req.Search,
		domain.Page{Start: req.Start, Length: req.Length})
	if err != nil {
		writeError(w, err)
		return
	}

	results, err := rt.searcher.Execute(r.Context(), query, r.Header.Get(tokenHeader))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data":  results,
		"count": len(results),
	})
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	category, err := resolveCategory(r.FormValue("major_head"), r.FormValue("minor_head"))
	if err != nil {
		writeError(w, err)
		return
	}

	date := time.Now().UTC()
	if raw := r.FormValue("document_date"); raw != "" {
		date, err = parseDate(raw)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	tagSet := domain.NewTagSet()
	for _, raw := range r.MultipartForm.Value["tags"] {
		tagSet.AddFromInput(raw)
	}

	headers := r.MultipartForm.File["file"]
	staged := make([]domain.PendingFile, 0, len(headers))
	discardStaged := func() {
		for _, file := range staged {
			_ = rt.stager.Discard(r.Context(), file)
		}
	}
	for _, header := range headers {
		part, err := header.Open()
		if err != nil {
			discardStaged()
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable file part"})
			return
		}
		pending, err := rt.stager.Stage(r.Context(), header.Filename, header.Header.Get("Content-Type"), part)
		part.Close()
		if err != nil {
			discardStaged()
			writeError(w, err)
			return
		}
		staged = append(staged, pending)
	}

	form := domain.SubmissionForm{
		Category: category,
		Tags:     tagSet.Selected(),
		Remarks:  r.FormValue("remarks"),
		Date:     date,
		Files:    staged,
		UserID:   rt.userID,
	}

	submitter := rt.newSubmitter()
	if err := submitter.Submit(r.Context(), &form, r.Header.Get(tokenHeader)); err != nil {
		// Nothing holds the staged files for a retry over HTTP.
		discardStaged()
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

// resolveCategory runs the labels through the cascading selector so a
// minor outside its major's options is rejected up front.
func resolveCategory(major, minor string) (domain.Category, error) {
	selector := domain.NewCategorySelector(nil)
	if major == "" {
		if minor != "" {
			return domain.Category{}, domain.WrapError(domain.ErrValidation, "category",
				errors.New("minor_head requires major_head"))
		}
		return domain.Category{}, nil
	}
	selector.SetMajor(major)
	if minor != "" && !selector.SetMinor(minor) {
		return domain.Category{}, domain.WrapError(domain.ErrValidation, "category",
			fmt.Errorf("%q is not a subcategory of %q", minor, major))
	}
	return selector.Category(), nil
}

func resolveDateRange(from, to string) (domain.DateRange, error) {
	var dates domain.DateRange
	if from != "" {
		t, err := parseDate(from)
		if err != nil {
			return domain.DateRange{}, err
		}
		dates.SetFrom(t)
	}
	if to != "" {
		t, err := parseDate(to)
		if err != nil {
			return domain.DateRange{}, err
		}
		dates.SetTo(t)
	}
	return dates, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.WrapError(domain.ErrValidation, "date",
		fmt.Errorf("cannot parse %q, want RFC3339 or YYYY-MM-DD", raw))
}
