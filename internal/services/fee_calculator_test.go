package services

import (
	"errors"
	"testing"

	"gigcampus/pkg/utils"
)

func TestFeeSplitAddsUp(t *testing.T) {
	t.Parallel()

	calc := NewFeeCalculator(FeeConfig{Rate: 0.10})

	for gross := int64(1); gross <= 50_000; gross += 7 {
		split, err := calc.Split(gross)
		if err != nil {
			t.Fatalf("split %d failed: %v", gross, err)
		}
		if split.PlatformFee+split.PayeeEarnings != gross {
			t.Fatalf("split %d does not add up: fee=%d earnings=%d",
				gross, split.PlatformFee, split.PayeeEarnings)
		}
		if split.PlatformFee < 0 || split.PayeeEarnings < 0 {
			t.Fatalf("split %d produced a negative part: fee=%d earnings=%d",
				gross, split.PlatformFee, split.PayeeEarnings)
		}
	}
}

func TestFeeSplitRounding(t *testing.T) {
	t.Parallel()

	calc := NewFeeCalculator(FeeConfig{Rate: 0.10})

	cases := []struct {
		gross    int64
		fee      int64
		earnings int64
	}{
		{10_000, 1_000, 9_000},
		{95, 10, 85},   // 9.5 rounds half-up
		{94, 9, 85},    // 9.4 rounds down
		{1, 0, 1},      // 0.1 rounds to zero
		{5, 1, 4},      // 0.5 rounds half-up
		{99_999, 10_000, 89_999},
	}

	for _, tc := range cases {
		split, err := calc.Split(tc.gross)
		if err != nil {
			t.Fatalf("split %d failed: %v", tc.gross, err)
		}
		if split.PlatformFee != tc.fee || split.PayeeEarnings != tc.earnings {
			t.Fatalf("split %d = fee %d, earnings %d; want fee %d, earnings %d",
				tc.gross, split.PlatformFee, split.PayeeEarnings, tc.fee, tc.earnings)
		}
	}
}

func TestFeeSplitDeterministic(t *testing.T) {
	t.Parallel()

	calc := NewFeeCalculator(FeeConfig{Rate: 0.10})

	first, err := calc.Split(12_345)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	for i := 0; i < 100; i++ {
		again, err := calc.Split(12_345)
		if err != nil {
			t.Fatalf("split failed on repeat: %v", err)
		}
		if again != first {
			t.Fatalf("split is not deterministic: %+v vs %+v", again, first)
		}
	}
}

func TestFeeSplitRejectsNonPositive(t *testing.T) {
	t.Parallel()

	calc := NewFeeCalculator(FeeConfig{Rate: 0.10})

	for _, gross := range []int64{0, -1, -10_000} {
		if _, err := calc.Split(gross); !errors.Is(err, utils.ErrValidation) {
			t.Fatalf("split %d should fail validation, got %v", gross, err)
		}
	}
}

func TestFeeSplitConfigurableRate(t *testing.T) {
	t.Parallel()

	calc := NewFeeCalculator(FeeConfig{Rate: 0.15})

	split, err := calc.Split(10_000)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if split.PlatformFee != 1_500 || split.PayeeEarnings != 8_500 {
		t.Fatalf("15%% split = %+v, want fee 1500 earnings 8500", split)
	}
}
