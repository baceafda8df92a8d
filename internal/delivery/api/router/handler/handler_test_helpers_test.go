package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"membership/internal/delivery/api/response"
	"membership/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type handlerRequest struct {
	method string
	target string
	body   string
	params map[string]string
}

func newTestContext(hr handlerRequest) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var body io.Reader
	if hr.body != "" {
		body = strings.NewReader(hr.body)
	}
	req := httptest.NewRequest(hr.method, hr.target, body)
	if hr.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(hr.params))
	values := make([]string, 0, len(hr.params))
	for name, value := range hr.params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NoError(t, json.Unmarshal(body.Data, out))
}
