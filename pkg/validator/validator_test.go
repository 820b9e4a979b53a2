package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"Name" validate:"required,notblank,max=10"`
	Price *int64 `json:"Price" validate:"required,min=0"`
	Kind  string `json:"Kind" validate:"omitempty,oneof=IN OUT"`
}

func int64Ptr(v int64) *int64 { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     sample
		wantField string
		wantTag   string
	}{
		{name: "valid", input: sample{Name: "Widget", Price: int64Ptr(5)}},
		{name: "missing name", input: sample{Price: int64Ptr(5)}, wantField: "Name", wantTag: "required"},
		{name: "blank name", input: sample{Name: "   ", Price: int64Ptr(5)}, wantField: "Name", wantTag: "notblank"},
		{name: "missing price", input: sample{Name: "Widget"}, wantField: "Price", wantTag: "required"},
		{name: "negative price", input: sample{Name: "Widget", Price: int64Ptr(-1)}, wantField: "Price", wantTag: "min"},
		{name: "bad kind", input: sample{Name: "Widget", Price: int64Ptr(1), Kind: "SIDEWAYS"}, wantField: "Kind", wantTag: "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.NotEmpty(t, verr.Fields)
			assert.Equal(t, tt.wantField, verr.Fields[0].FailedField)
			assert.Equal(t, tt.wantTag, verr.Fields[0].Tag)
			assert.Contains(t, verr.Error(), tt.wantField)
		})
	}
}
