package param

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/looplj/objecthub/internal/objects"
)

func TestIsFalsy(t *testing.T) {
	var nilArticle *objects.Article

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil", value: nil, want: true},
		{name: "false", value: false, want: true},
		{name: "true", value: true, want: false},
		{name: "empty string", value: "", want: true},
		{name: "zero string", value: "0", want: true},
		{name: "zero float string", value: "0.0", want: false},
		{name: "id string", value: "12", want: false},
		{name: "zero int", value: 0, want: true},
		{name: "zero int64", value: int64(0), want: true},
		{name: "zero uint", value: uint(0), want: true},
		{name: "zero float", value: 0.0, want: true},
		{name: "int", value: 3, want: false},
		{name: "empty slice", value: []string{}, want: true},
		{name: "slice", value: []string{"a"}, want: false},
		{name: "empty map", value: map[string]any{}, want: true},
		{name: "nil pointer", value: nilArticle, want: true},
		{name: "object", value: newArticle(1, true), want: false},
		{name: "struct", value: struct{}{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isFalsy(tt.value))
		})
	}
}
