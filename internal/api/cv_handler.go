package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"ats-checker/internal/cv"
)

// uploadField is the multipart field carrying the résumé.
const uploadField = "pdf"

// AnalyzeHandler analyzes an uploaded résumé
// @Summary Analyze a résumé
// @Description Upload a PDF résumé and get extracted fields, an ATS compatibility score, issues and recommendations
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "Résumé (PDF)"
// @Success 200 {object} analysis.Report
// @Failure 400 {object} errorResponse
// @Failure 405 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /analyze [post]
func (a *API) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	startTime := time.Now()
	reqID := RequestIDFrom(r.Context())

	filename, data, err := a.readUpload(w, r)
	if err != nil {
		writeError(w, r, "AnalyzeHandler", err)
		return
	}
	log.Printf("[AnalyzeHandler] request_id=%s received %s (%d bytes)", reqID, filename, len(data))

	ctx, cancel := context.WithTimeout(r.Context(), a.decodeTimeout)
	defer cancel()

	text, err := a.decoder.Parse(ctx, filename, data)
	if err != nil {
		writeError(w, r, "AnalyzeHandler", &ErrProcessing{Err: fmt.Errorf("decode %s: %w", filename, err)})
		return
	}

	report := a.analyzer.Analyze(text)

	log.Printf("[AnalyzeHandler] request_id=%s score=%d issues=%d (processing time: %dms)",
		reqID, report.ATSScore, len(report.Issues), time.Since(startTime).Milliseconds())

	writeJSON(w, http.StatusOK, report)
}

func (a *API) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes)
	if err := r.ParseMultipartForm(a.maxUploadBytes); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return "", nil, &ErrMissingInput{Field: uploadField}
		}
		return "", nil, &ErrProcessing{Err: fmt.Errorf("parse multipart form: %w", err)}
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil, &ErrMissingInput{Field: uploadField}
		}
		return "", nil, &ErrProcessing{Err: err}
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !isPDF(header.Filename, contentType) {
		return "", nil, &ErrUnsupportedMedia{Filename: header.Filename, ContentType: contentType}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, &ErrProcessing{Err: fmt.Errorf("read upload: %w", err)}
	}
	return header.Filename, data, nil
}

func isPDF(filename, contentType string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return true
	}
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == cv.MimePDF
}
