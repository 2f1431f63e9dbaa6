package service

import (
	"testing"

	apperrors "compliance-portal-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidateABN(t *testing.T) {
	tests := []struct {
		name    string
		abn     string
		wantErr bool
	}{
		{
			name:    "valid ABN",
			abn:     "51824753556",
			wantErr: false,
		},
		{
			name:    "valid ABN with spaces",
			abn:     "51 824 753 556",
			wantErr: false,
		},
		{
			name:    "valid ABN second sample",
			abn:     "53004085616",
			wantErr: false,
		},
		{
			name:    "checksum failure",
			abn:     "51824753557",
			wantErr: true,
		},
		{
			name:    "too short",
			abn:     "5182475355",
			wantErr: true,
		},
		{
			name:    "too long",
			abn:     "518247535561",
			wantErr: true,
		},
		{
			name:    "non-numeric characters",
			abn:     "51824A53556",
			wantErr: true,
		},
		{
			name:    "empty string",
			abn:     "",
			wantErr: true,
		},
		{
			name:    "all zeros",
			abn:     "00000000000",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateABN(tt.abn)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidABN)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeABN(t *testing.T) {
	assert.Equal(t, "51824753556", NormalizeABN("51 824 753 556"))
	assert.Equal(t, "51824753556", NormalizeABN("51824753556"))
	assert.Equal(t, "", NormalizeABN("   "))
}
