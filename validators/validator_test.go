package validators

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Theme    string `validate:"omitempty,oneof=light dark"`
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		form    signupForm
		wantErr bool
	}{
		{"valid", signupForm{Username: "odin01", Email: "odin01@campus.test"}, false},
		{"valid with optional field", signupForm{Username: "odin01", Email: "odin01@campus.test", Theme: "dark"}, false},
		{"missing required field", signupForm{Email: "odin01@campus.test"}, true},
		{"username too short", signupForm{Username: "ab", Email: "odin01@campus.test"}, true},
		{"malformed email", signupForm{Username: "odin01", Email: "not-an-email"}, true},
		{"bad enum value", signupForm{Username: "odin01", Email: "odin01@campus.test", Theme: "neon"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.form)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			// Failures surface as 400s, not raw validator errors.
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}
