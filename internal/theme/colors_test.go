package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreColor(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  Color
	}{
		{name: "perfect score", score: 100, want: ColorScoreGood},
		{name: "good threshold", score: 75, want: ColorScoreGood},
		{name: "just below good", score: 74, want: ColorScoreMid},
		{name: "mid threshold", score: 50, want: ColorScoreMid},
		{name: "just below mid", score: 49, want: ColorScoreBad},
		{name: "zero", score: 0, want: ColorScoreBad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreColor(tt.score))
		})
	}
}
