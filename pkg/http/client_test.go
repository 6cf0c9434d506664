package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Analyze(t *testing.T) {
	var gotFile, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analyze", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		f, h, err := r.FormFile("pdf")
		if !assert.NoError(t, err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		gotFile = h.Filename + ":" + string(data)
		gotType = h.Header.Get("Content-Type")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"John Smith","ats_score":72,"is_ats_friendly":true,"issues":[],"recommendations":["a"]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", 5*time.Second)
	report, err := c.Analyze(context.Background(), "resume.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	assert.Equal(t, "resume.pdf:%PDF-1.4", gotFile)
	assert.Equal(t, "application/pdf", gotType)
	require.NotNil(t, report.Name)
	assert.Equal(t, "John Smith", *report.Name)
	assert.Equal(t, 72, report.ATSScore)
	assert.True(t, report.IsATSFriendly)
}

func TestClient_Analyze_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Please upload a PDF file"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Analyze(context.Background(), "resume.docx", strings.NewReader("x"))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Please upload a PDF file", apiErr.Message)
}

func TestClient_Analyze_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Analyze(context.Background(), "resume.pdf", strings.NewReader("x"))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}
