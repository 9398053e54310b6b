package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervo/internal/domain"
)

func TestResultPresenter_EmptyByDefault(t *testing.T) {
	presenter := NewResultPresenter()

	_, ok := presenter.Current()
	assert.False(t, ok)
	assert.False(t, presenter.Visible())
}

func TestResultPresenter_ShowThenHideKeepsResult(t *testing.T) {
	presenter := NewResultPresenter()
	presenter.Show(domain.Result{ID: "res-1", Score: 64, Feedback: "Decent."})

	assert.True(t, presenter.Visible())

	presenter.Hide()
	assert.False(t, presenter.Visible())

	result, ok := presenter.Current()
	require.True(t, ok)
	assert.Equal(t, "res-1", result.ID)
	assert.Equal(t, 64, result.Score)
}

func TestResultPresenter_ShowReplacesPreviousResult(t *testing.T) {
	presenter := NewResultPresenter()
	presenter.Show(domain.Result{ID: "res-1", Score: 30})
	presenter.Hide()
	presenter.Show(domain.Result{ID: "res-2", Score: 90})

	assert.True(t, presenter.Visible())
	result, ok := presenter.Current()
	require.True(t, ok)
	assert.Equal(t, "res-2", result.ID)
}
