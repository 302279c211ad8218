package packet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mquist/gamewire/wire"
)

func TestMathChallengeRoundTrip(t *testing.T) {
	cats := testCatalogs()
	original := &MathChallenge{
		Puzzle:      "3 + 4",
		RewardKind:  "gauze",
		RewardCount: 3,
		ProblemID:   7,
	}

	decoded, err := DefaultRegistry.Decode(wire.NewStreamReader(encode(t, cats, original)), cats)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestMathAnswerRoundTrip(t *testing.T) {
	cats := testCatalogs()
	for _, answer := range []int16{0, 7, -7, 32767, -32768} {
		original := &MathAnswer{Answer: answer, ProblemID: 7}
		decoded, err := DefaultRegistry.Decode(wire.NewStreamReader(encode(t, cats, original)), cats)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	}
}

func TestMathFeedbackAllFlagCombinations(t *testing.T) {
	cats := testCatalogs()

	for combo := 0; combo < 8; combo++ {
		p := &MathFeedback{Correct: combo&1 != 0}
		if combo&2 != 0 {
			p.XPEarned = Some(uint16(250))
		}
		if combo&4 != 0 {
			p.XPTotal = Some(uint32(123456))
		}

		t.Run(fmt.Sprintf("combo_%03b", combo), func(t *testing.T) {
			decoded, err := DefaultRegistry.Decode(wire.NewStreamReader(encode(t, cats, p)), cats)
			require.NoError(t, err)
			assert.Equal(t, p, decoded)
		})
	}
}

func TestMathFeedbackAbsentIsNotZero(t *testing.T) {
	cats := testCatalogs()
	original := &MathFeedback{Correct: true, XPEarned: Some(uint16(2))}

	decoded, err := DefaultRegistry.Decode(wire.NewStreamReader(encode(t, cats, original)), cats)
	require.NoError(t, err)

	fb := decoded.(*MathFeedback)
	assert.True(t, fb.Correct)
	require.True(t, fb.XPEarned.Exists)
	assert.Equal(t, uint16(2), fb.XPEarned.Item)
	assert.False(t, fb.XPTotal.Exists, "absent field must decode as absent")
}

func TestMathFeedbackAbsentConsumesNoBytes(t *testing.T) {
	cats := testCatalogs()
	bare := encode(t, cats, &MathFeedback{Correct: true})
	full := encode(t, cats, &MathFeedback{
		Correct:  true,
		XPEarned: Some(uint16(1)),
		XPTotal:  Some(uint32(1)),
	})

	// Discriminant + flag byte when everything is absent; six more bytes
	// when both XP fields are present.
	assert.Len(t, bare, 2)
	assert.Len(t, full, 8)
}

func TestMathChallengePuzzleTruncatedToMax(t *testing.T) {
	cats := testCatalogs()
	long := ""
	for len(long) <= PuzzleMaxLen {
		long += "1 + 2 + 3 + "
	}
	original := &MathChallenge{Puzzle: long, RewardKind: "gauze", RewardCount: 1, ProblemID: 9}

	decoded, err := DefaultRegistry.Decode(wire.NewStreamReader(encode(t, cats, original)), cats)
	require.NoError(t, err)
	assert.Equal(t, long[:PuzzleMaxLen], decoded.(*MathChallenge).Puzzle)
}
