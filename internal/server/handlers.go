package server

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/sozercan/inkwell/apimodels"
	"github.com/sozercan/inkwell/internal/analyzer"
)

//go:embed request.schema.json
var requestSchemaJSON []byte

var requestSchema = func() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("request.schema.json", bytes.NewReader(requestSchemaJSON)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("request.schema.json")
}()

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK", "service": serviceName})
}

// handle adapts one analyzer operation to HTTP. Validation failures are
// client faults; every other error is a server fault.
func handle[T any](op apimodels.Operation, fn func(context.Context, apimodels.AnalysisRequest) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("Handling request", "operation", op, "request_id", requestID(r.Context()))

		req, err := decodeRequest(w, r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apimodels.ErrorBody(op, fmt.Sprintf("Invalid request: %v", err)))
			return
		}

		result, err := fn(r.Context(), req)
		if err != nil {
			var verr *analyzer.ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusBadRequest, apimodels.ErrorBody(op, err.Error()))
				return
			}
			slog.Error("Request failed", "operation", op, "error", err, "request_id", requestID(r.Context()))
			writeJSON(w, http.StatusInternalServerError, apimodels.ErrorBody(op, err.Error()))
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (apimodels.AnalysisRequest, error) {
	var req apimodels.AnalysisRequest
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return req, err
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return req, err
	}
	if err := requestSchema.Validate(doc); err != nil {
		return req, err
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, err
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
