package vat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStandardRate(t *testing.T) {
	// 35.00 gross at 21%: VAT = 3500*21/121 = 607.43... -> 607
	net, vatAmount := Split(3500, 21)
	assert.Equal(t, int64(607), vatAmount)
	assert.Equal(t, int64(2893), net)
}

func TestSplitZeroAndNegativeRate(t *testing.T) {
	net, vatAmount := Split(10000, 0)
	assert.Equal(t, int64(10000), net)
	assert.Equal(t, int64(0), vatAmount)

	net, vatAmount = Split(10000, -5)
	assert.Equal(t, int64(10000), net)
	assert.Equal(t, int64(0), vatAmount)
}

func TestSplitZeroGross(t *testing.T) {
	net, vatAmount := Split(0, 21)
	assert.Equal(t, int64(0), net)
	assert.Equal(t, int64(0), vatAmount)
}

func TestSplitHalfRoundsToEven(t *testing.T) {
	// 5 cents at 100%: VAT = 5*100/200 = 2.5 exactly, rounds to even 2.
	net, vatAmount := Split(5, 100)
	assert.Equal(t, int64(2), vatAmount)
	assert.Equal(t, int64(3), net)
}

func TestSplitReconciles(t *testing.T) {
	// net+vat must equal gross for every input, never a cent drifts.
	for _, rate := range []float64{6, 12, 21, 25} {
		for gross := int64(0); gross < 5000; gross++ {
			net, vatAmount := Split(gross, rate)
			if net+vatAmount != gross {
				t.Fatalf("Split(%d, %v) = (%d, %d), does not reconcile", gross, rate, net, vatAmount)
			}
			if net < 0 || vatAmount < 0 {
				t.Fatalf("Split(%d, %v) produced a negative component", gross, rate)
			}
		}
	}
}
