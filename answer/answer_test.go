package answer_test

import (
	"testing"

	"github.com/sghaida/euclid/answer"
	"github.com/sghaida/euclid/digest"
	"github.com/sghaida/euclid/euclid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = digest.Credentials{StudentID: "w1234567", SecretKey: "hunter2"}

func TestSolve_StepPresent(t *testing.T) {
	t.Parallel()

	got := answer.Solve(48, 18, 3, testCreds)

	assert.Equal(t, 6, got.GCD)
	assert.Equal(t, 4, got.Depth)
	require.True(t, got.HasStep)
	assert.Equal(t, euclid.Step{Dividend: 12, Divisor: 6}, got.Step)
	assert.Equal(t, "6,4,12,6", got.Response)
	assert.Equal(t,
		"44e6e11e1754c348846dab7d47d3f8e69fcd15ea2fed2e0152ecdadb390319a1",
		got.Digest)
}

func TestSolve_StepAbsent(t *testing.T) {
	t.Parallel()

	got := answer.Solve(1000000, 500000, 3, testCreds)

	assert.Equal(t, 500000, got.GCD)
	assert.Equal(t, 2, got.Depth)
	assert.False(t, got.HasStep)
	assert.Equal(t, "500000,2,None", got.Response)
	assert.Equal(t,
		"ba312b694e8c679bb6a74f8ee238b5402b482656e41d1dfcbb86d14e3fe7c473",
		got.Digest)
}

func TestSolve_DigestMatchesManualComposition(t *testing.T) {
	t.Parallel()

	got := answer.Solve(56, 98, 2, testCreds)

	assert.Equal(t, digest.Sum(testCreds, got.Response), got.Digest)
}
