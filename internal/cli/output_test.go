package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/registrar/internal/store"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
		RunID:  "run-1",
	}

	data := map[string]string{"result": "success"}
	err := formatter.Success(data)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Equal(t, "run-1", resp.Run)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error(CodeNotFound, "Student with ID S404 not found", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E002", resp.Error.Code)
	assert.Equal(t, "Student with ID S404 not found", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Success("Student S001 added.")
	require.NoError(t, err)
	assert.Equal(t, "Student S001 added.\n", buf.String())
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Error(CodeConflict, "add student S001: conflict on students.email",
		map[string]string{"constraint": "students.email"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E003]: add student S001: conflict on students.email")
	assert.Contains(t, buf.String(), "Details: map[constraint:students.email]")
}

func TestOutputFormatter_Emit(t *testing.T) {
	text := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: text}
	require.NoError(t, f.Emit([]int{1, 2}, func(w io.Writer) {
		fmt.Fprint(w, "two items")
	}))
	assert.Equal(t, "two items", text.String())

	js := &bytes.Buffer{}
	f = &OutputFormatter{Format: "json", Writer: js}
	require.NoError(t, f.Emit([]int{1, 2}, func(w io.Writer) {
		t.Fatal("text renderer called in json mode")
	}))
	assert.JSONEq(t, `{"status":"ok","data":[1,2]}`, js.String())
}

func TestOutputFormatter_Result(t *testing.T) {
	tests := []struct {
		name     string
		res      store.Result
		wantCode int
		wantOut  string
	}{
		{
			name:    "ok",
			res:     store.Result{Status: store.StatusOK},
			wantOut: "done\n",
		},
		{
			name:     "conflict",
			res:      store.Result{Status: store.StatusConflict, Constraint: "students.student_id"},
			wantCode: ExitFailure,
			wantOut:  "Error [E003]: add student S001: conflict on students.student_id\n",
		},
		{
			name:     "not found",
			res:      store.Result{Status: store.StatusNotFound},
			wantCode: ExitFailure,
			wantOut:  "Error [E002]: add student S001: not_found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			f := &OutputFormatter{Format: "text", Writer: buf}

			err := f.Result("add student S001", tt.res, "done", nil)
			if tt.wantCode == 0 {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, GetExitCode(err))
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				assert.True(t, exitErr.Reported)
			}
			assert.Contains(t, buf.String(), tt.wantOut)
		})
	}
}

func TestExitError(t *testing.T) {
	base := errors.New("disk I/O error")
	err := WrapExitError(ExitCommandError, "failed to open database", base)

	assert.Equal(t, "failed to open database: disk I/O error", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, ExitFailure, GetExitCode(base))
	assert.Equal(t, "plain", NewExitError(ExitFailure, "plain").Error())

	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}
