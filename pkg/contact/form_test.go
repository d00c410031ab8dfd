package contact

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValidity(t *testing.T) {
	tests := []struct {
		name      string
		form      Form
		wantValid bool
		wantField string
	}{
		{"minimal valid", Form{Name: "A", Email: "a@b.co", Message: "hi"}, true, ""},
		{"empty name", Form{Name: "", Email: "a@b.co", Message: "hi"}, false, FieldName},
		{"whitespace name", Form{Name: "   ", Email: "a@b.co", Message: "hi"}, false, FieldName},
		{"missing at", Form{Name: "A", Email: "ab.co", Message: "hi"}, false, FieldEmail},
		{"missing tld", Form{Name: "A", Email: "a@b", Message: "hi"}, false, FieldEmail},
		{"space in email", Form{Name: "A", Email: "a b@c.co", Message: "hi"}, false, FieldEmail},
		{"empty message", Form{Name: "A", Email: "a@b.co", Message: "\n\t "}, false, FieldMessage},
		{"message at limit", Form{Name: "A", Email: "a@b.co", Message: strings.Repeat("x", 500)}, true, ""},
		{"message over limit", Form{Name: "A", Email: "a@b.co", Message: strings.Repeat("x", 501)}, false, FieldMessage},
		{"multibyte at limit", Form{Name: "A", Email: "a@b.co", Message: strings.Repeat("é", 500)}, true, ""},
		{"name checked first", Form{Name: "", Email: "bad", Message: ""}, false, FieldName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantValid, tt.form.IsFormValid())

			err := tt.form.Validate()
			if tt.wantValid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidForm))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestFormFieldAndReset(t *testing.T) {
	var f Form
	*f.Field(FieldName) = "Ada"
	*f.Field(FieldEmail) = "ada@example.com"
	*f.Field(FieldMessage) = "hello"
	assert.Nil(t, f.Field("phone"))
	assert.Equal(t, Form{Name: "Ada", Email: "ada@example.com", Message: "hello"}, f)

	f.Reset()
	assert.Equal(t, Form{}, f)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "IDLE", StatusIdle.String())
	assert.Equal(t, "SENDING", StatusSending.String())
	assert.Equal(t, "SUCCESS", StatusSuccess.String())
	assert.Equal(t, "ERROR", StatusError.String())
	assert.Empty(t, StatusIdle.Message())
	assert.NotEmpty(t, StatusError.Message())
}
