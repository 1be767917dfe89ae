// Package dispatch hands assembled training archives to the external
// compute worker over HTTP.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

// Bucket is the fixed worker-side bucket receiving dataset archives.
const Bucket = "datasets"

// DispatchError reports a failed worker call: transport failure,
// non-success HTTP status, undecodable body, or a response without an
// affirmative success flag. The worker's status and body are embedded
// for diagnosis. Dispatch is single-shot; there is no retry to hide it.
type DispatchError struct {
	StatusCode int
	Body       string
	Cause      error
}

var _ error = &DispatchError{}

func (e *DispatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("worker dispatch failed: %s", e.Cause)
	}
	return fmt.Sprintf("worker dispatch failed: status %d: %s", e.StatusCode, e.Body)
}

func (e *DispatchError) Unwrap() error {
	return e.Cause
}

// Request is one archive hand-off.
type Request struct {
	Archive           []byte
	ArchiveName       string
	UploadPath        string
	AutoStartTraining bool
	Config            kdb.TrainingConfig
}

// Response is the worker's answer to a successful upload.
type Response struct {
	Success      bool   `json:"success"`
	FileName     string `json:"fileName"`
	PresignedUrl string `json:"presignedUrl"`
	Bucket       string `json:"bucket"`
	UploadPath   string `json:"uploadPath"`
}

type Dispatcher struct {
	endpoint string
	client   *http.Client
}

// NewDispatcher targets the worker at endpoint. timeout bounds the whole
// call including the archive upload; a timeout surfaces as DispatchError.
func NewDispatcher(endpoint string, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
	}
}

// UploadPath composes the worker-side object prefix for one dispatch.
func UploadPath(userId string, datasetName string, timestamp time.Time) string {
	return fmt.Sprintf("%s/%s_%d", userId, datasetName, timestamp.UnixMilli())
}

// Send transmits the archive as one multipart POST to the worker.
//
// The worker response must decode and carry success=true; anything else
// is a *DispatchError. One attempt only.
func (d *Dispatcher) Send(ctx context.Context, req Request) (*Response, error) {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	file, err := form.CreateFormFile("file", req.ArchiveName)
	if err != nil {
		return nil, err
	}
	if _, err := file.Write(req.Archive); err != nil {
		return nil, err
	}

	config, err := json.Marshal(req.Config)
	if err != nil {
		return nil, err
	}
	for field, value := range map[string]string{
		"uploadPath":        req.UploadPath,
		"bucket":            Bucket,
		"autoStartTraining": strconv.FormatBool(req.AutoStartTraining),
		"trainingConfig":    string(config),
	} {
		if err := form.WriteField(field, value); err != nil {
			return nil, err
		}
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	hreq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, d.endpoint+"/upload-dataset", body,
	)
	if err != nil {
		return nil, err
	}
	hreq.Header.Set("Content-Type", form.FormDataContentType())

	hresp, err := d.client.Do(hreq)
	if err != nil {
		return nil, &DispatchError{Cause: err}
	}
	defer hresp.Body.Close()

	payload, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, &DispatchError{StatusCode: hresp.StatusCode, Cause: err}
	}

	if hresp.StatusCode < 200 || 300 <= hresp.StatusCode {
		return nil, &DispatchError{StatusCode: hresp.StatusCode, Body: string(payload)}
	}

	resp := Response{}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, &DispatchError{StatusCode: hresp.StatusCode, Body: string(payload), Cause: err}
	}

	// HTTP 200 without an affirmative flag is still a failure.
	if !resp.Success {
		return nil, &DispatchError{StatusCode: hresp.StatusCode, Body: string(payload)}
	}

	return &resp, nil
}
