package vault

import (
	"github.com/iov-one/vault/errors"
)

// AccountStorageOverhead is the number of bytes every account is charged
// for on top of its data.
const AccountStorageOverhead = 128

// Rent decides how many lamports an account must hold to store its data.
// Only rent exempt accounts may carry program data.
type Rent struct {
	LamportsPerByteYear uint64  `json:"lamports_per_byte_year"`
	ExemptionThreshold  float64 `json:"exemption_threshold"`
}

// DefaultRent mirrors the values used on mainnet.
var DefaultRent = Rent{
	LamportsPerByteYear: 3480,
	ExemptionThreshold:  2.0,
}

// MinimumBalance returns the lamports needed for dataLen bytes to be rent
// exempt.
func (r Rent) MinimumBalance(dataLen int) uint64 {
	bytes := uint64(AccountStorageOverhead + dataLen)
	return uint64(float64(bytes*r.LamportsPerByteYear) * r.ExemptionThreshold)
}

// IsExempt returns true if lamports cover the data size.
func (r Rent) IsExempt(lamports uint64, dataLen int) bool {
	return lamports >= r.MinimumBalance(dataLen)
}

// Validate checks that the parameters are usable.
func (r Rent) Validate() error {
	if r.LamportsPerByteYear == 0 {
		return errors.Wrap(errors.ErrInput, "lamports per byte year must be positive")
	}
	if r.ExemptionThreshold <= 0 {
		return errors.Wrap(errors.ErrInput, "exemption threshold must be positive")
	}
	return nil
}
