package services

import (
	"math"

	"gigcampus/pkg/utils"
)

type FeeConfig struct {
	Rate float64 // platform's cut of the gross amount, e.g. 0.10
}

type FeeSplit struct {
	PlatformFee   int64
	PayeeEarnings int64
}

// FeeCalculator is the single source of truth for the platform fee split.
// Order creation and every reconciliation/aggregation path go through it;
// nothing else is allowed to apply the rate.
type FeeCalculator struct {
	cfg FeeConfig
}

func NewFeeCalculator(cfg FeeConfig) *FeeCalculator {
	return &FeeCalculator{cfg: cfg}
}

// Split computes the fee on a gross amount in whole currency units.
// The fee rounds half-up; earnings are always the exact remainder, so
// PlatformFee + PayeeEarnings == gross with no rounding drift.
func (f *FeeCalculator) Split(gross int64) (FeeSplit, error) {
	if gross <= 0 {
		return FeeSplit{}, utils.ErrValidation
	}

	fee := int64(math.Floor(float64(gross)*f.cfg.Rate + 0.5))

	return FeeSplit{
		PlatformFee:   fee,
		PayeeEarnings: gross - fee,
	}, nil
}
