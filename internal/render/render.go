package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
	"github.com/Noctua76/noctua-panic-backend/pkg/e"
	"github.com/Noctua76/noctua-panic-backend/pkg/validator"
)

// Renderer writes every JSON and plain-text response of the API.
type Renderer struct {
	logger *slog.Logger
}

func NewRenderer(logger *slog.Logger) *Renderer {
	return &Renderer{logger: logger}
}

func (r *Renderer) JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		r.logger.Error("json encode failed", slog.Any("error", err))
	}
}

func (r *Renderer) Text(w http.ResponseWriter, code int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = io.WriteString(w, s)
}

// Error writes the uniform error body.
func (r *Renderer) Error(w http.ResponseWriter, code int, message string, err error) {
	resp := domain.ErrorResponse{Status: "error", Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	r.JSON(w, code, resp)
}

// Invalid writes a 400 for a failed Bind, using its client-facing message.
func (r *Renderer) Invalid(w http.ResponseWriter, err error) {
	msg := "Invalid request."
	var be *BindError
	if errors.As(err, &be) {
		msg = be.Message
	}
	r.Error(w, http.StatusBadRequest, msg, nil)
}

// Bind decodes a JSON body into dst and validates it. Empty bodies decode to
// the zero value so that required-field rules report the missing fields.
// The returned error is always a *BindError.
func Bind(req *http.Request, dst any) error {
	if err := decode(req, dst); err != nil {
		return err
	}
	if err := validator.ValidateStruct(dst); err != nil {
		return bindErrorFrom(err)
	}
	return nil
}

// BindLoose decodes without validation and tolerates unknown fields.
func BindLoose(req *http.Request, dst any) error {
	return decode(req, dst)
}

func decode(req *http.Request, dst any) error {
	if req.Body == nil {
		return nil
	}
	dec := json.NewDecoder(req.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &BindError{Message: "Request body too large.", err: e.ErrInvalidInput}
		}
		return &BindError{Message: "Invalid JSON body.", err: fmt.Errorf("%w: %v", e.ErrInvalidInput, err)}
	}
	if dec.More() {
		return &BindError{Message: "Invalid JSON body.", err: fmt.Errorf("%w: trailing data", e.ErrInvalidInput)}
	}
	return nil
}

// BindError is the client-facing result of a failed decode or validation.
type BindError struct {
	Message string
	Fields  []string
	err     error
}

func (b *BindError) Error() string { return b.Message }

func (b *BindError) Unwrap() error { return b.err }

func bindErrorFrom(err error) *BindError {
	fields := validator.Fields(err)
	if len(fields) == 0 {
		return &BindError{Message: "Invalid request.", err: fmt.Errorf("%w: %v", e.ErrInvalidInput, err)}
	}

	var missing, invalid []string
	for _, f := range fields {
		switch f.Tag {
		case "required", "notblank":
			missing = append(missing, f.Field)
		default:
			invalid = append(invalid, f.Field)
		}
	}

	be := &BindError{err: e.ErrInvalidInput}
	switch {
	case len(missing) == 1 && len(invalid) == 0:
		be.Message = fmt.Sprintf("Field %q is required.", missing[0])
	case len(missing) > 1 && len(invalid) == 0:
		be.Message = "Required fields: " + strings.Join(missing, ", ")
	case len(missing) == 0:
		be.Message = "Invalid fields: " + strings.Join(invalid, ", ")
	default:
		be.Message = "Required fields: " + strings.Join(missing, ", ") + "; invalid fields: " + strings.Join(invalid, ", ")
	}
	be.Fields = append(missing, invalid...)
	return be
}
