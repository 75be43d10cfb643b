package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short name", "test", 0x4fdcca5ddb678139},
		{"dotted name", "user.age_binned", FeatureID("user.age_binned")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, FeatureID(tt.data))
		})
	}
}

func TestFeatureID_Distinct(t *testing.T) {
	assert.NotEqual(t, FeatureID("feature_a"), FeatureID("feature_b"))
}

func TestFeatureID_Stable(t *testing.T) {
	assert.Equal(t, FeatureID("income"), FeatureID("income"))
}
