package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/serisow/docintel/pipeline"
)

type fakeProcessor struct {
	result  *pipeline.Result
	err     error
	uploads []pipeline.Upload
}

func (f *fakeProcessor) Process(ctx context.Context, upload pipeline.Upload) (*pipeline.Result, error) {
	f.uploads = append(f.uploads, upload)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestProcessHandlerRejectsUnsupportedExtension(t *testing.T) {
	proc := &fakeProcessor{}
	h := NewProcessHandler(proc, nil, 1<<20, discardLogger())

	body, contentType := multipartUpload(t, "malware.exe", []byte("binary"))
	req := httptest.NewRequest(http.MethodPost, "/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(proc.uploads) != 0 {
		t.Error("rejected upload reached the pipeline")
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if !strings.Contains(resp["error"], ".exe") {
		t.Errorf("error message %q does not name the extension", resp["error"])
	}
}

func TestProcessHandlerRejectsOversizedFile(t *testing.T) {
	proc := &fakeProcessor{}
	h := NewProcessHandler(proc, nil, 64, discardLogger())

	body, contentType := multipartUpload(t, "scan.png", bytes.Repeat([]byte("x"), 200))
	req := httptest.NewRequest(http.MethodPost, "/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(proc.uploads) != 0 {
		t.Error("oversized upload reached the pipeline")
	}
}

func TestProcessHandlerRejectsMissingFile(t *testing.T) {
	h := NewProcessHandler(&fakeProcessor{}, nil, 1<<20, discardLogger())

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("note", "no file here")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/process", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestProcessHandlerMapsInsufficientText(t *testing.T) {
	proc := &fakeProcessor{err: pipeline.ErrInsufficientText}
	h := NewProcessHandler(proc, nil, 1<<20, discardLogger())

	body, contentType := multipartUpload(t, "blank.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if resp["error"] != "Could not extract text from document" {
		t.Errorf("error = %q", resp["error"])
	}
}

func TestProcessHandlerSuccess(t *testing.T) {
	proc := &fakeProcessor{result: &pipeline.Result{
		Success:      true,
		Filename:     "invoice.pdf",
		DocumentType: "invoice",
		Confidence:   0.93,
	}}
	h := NewProcessHandler(proc, nil, 1<<20, discardLogger())

	body, contentType := multipartUpload(t, "invoice.pdf", []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest(http.MethodPost, "/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["document_type"] != "invoice" {
		t.Errorf("document_type = %v, want invoice", resp["document_type"])
	}
	if resp["success"] != true {
		t.Errorf("success = %v, want true", resp["success"])
	}

	if len(proc.uploads) != 1 {
		t.Fatalf("pipeline saw %d uploads, want 1", len(proc.uploads))
	}
	upload := proc.uploads[0]
	if upload.Filename != "invoice.pdf" {
		t.Errorf("upload filename = %q", upload.Filename)
	}
	// The temp file is removed once the handler returns.
	if _, err := os.Stat(upload.Path); !os.IsNotExist(err) {
		t.Errorf("temp file %s still exists after handler returned", upload.Path)
	}
}
