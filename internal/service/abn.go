package service

import (
	"strings"

	apperrors "compliance-portal-backend/internal/errors"
)

// abnWeights are the ATO modulus-89 weighting factors for each ABN digit position.
var abnWeights = [11]int{10, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19}

// NormalizeABN strips spaces from an ABN so that "51 824 753 556" and
// "51824753556" are treated as the same identifier.
func NormalizeABN(abn string) string {
	return strings.ReplaceAll(abn, " ", "")
}

// ValidateABN checks an Australian Business Number against the ATO
// modulus-89 checksum. The first digit is reduced by one, each digit is
// multiplied by its positional weight, and the sum must divide evenly by 89.
func ValidateABN(abn string) error {
	normalized := NormalizeABN(abn)
	if len(normalized) != 11 {
		return apperrors.ErrInvalidABN
	}

	sum := 0
	for i, r := range normalized {
		if r < '0' || r > '9' {
			return apperrors.ErrInvalidABN
		}
		digit := int(r - '0')
		if i == 0 {
			digit--
		}
		sum += digit * abnWeights[i]
	}

	if sum%89 != 0 {
		return apperrors.ErrInvalidABN
	}
	return nil
}
