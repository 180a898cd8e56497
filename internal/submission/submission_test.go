package submission

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/blockhint/internal/diagnosis"
)

func TestDecode_Valid(t *testing.T) {
	req, err := Decode([]byte(`{"code":"<xml></xml>","output":"","error":"","status":"0","code_language":"Arduino"}`))
	require.NoError(t, err)
	assert.Equal(t, "<xml></xml>", req.Code)
	assert.Equal(t, "0", req.Status)
	assert.Equal(t, "Arduino", req.CodeLanguage)
}

func TestDecode_DefaultsLanguage(t *testing.T) {
	req, err := Decode([]byte(`{"code":"","output":"","error":"boom","status":"1"}`))
	require.NoError(t, err)
	assert.Equal(t, "Python", req.CodeLanguage)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"code":`},
		{"missing status", `{"code":"","output":"","error":""}`},
		{"missing error", `{"code":"","output":"","status":"0"}`},
		{"unknown status", `{"code":"","output":"","error":"","status":"2"}`},
		{"numeric status", `{"code":"","output":"","error":"","status":1}`},
		{"unknown language", `{"code":"","output":"","error":"","status":"0","code_language":"Scratch"}`},
		{"array body", `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.body))
			require.Error(t, err)
			var target *ErrInvalidSubmission
			assert.True(t, errors.As(err, &target), "got %T", err)
		})
	}
}

func TestDecode_SchemaCompiledOnce(t *testing.T) {
	first, err := getCompiledSchema(requestSchema)
	require.NoError(t, err)
	second, err := getCompiledSchema(requestSchema)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestRequest_Outcome(t *testing.T) {
	req := &Request{Code: "<xml/>", Output: "out", Error: "err", Status: "1"}
	got := req.Outcome()
	assert.Equal(t, diagnosis.Outcome{
		ErrorText: "err",
		Output:    "out",
		Status:    diagnosis.StatusFailure,
		Language:  diagnosis.LanguagePython,
	}, got)
}
