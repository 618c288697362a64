package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (*Ports)(nil).Validate(), ErrInvalidPorts)
	assert.ErrorIs(t, NewPorts(nil).Validate(), ErrMissingDashboard)

	d, _ := newTestDashboard(t)
	assert.NoError(t, NewPorts(d).Validate())
}

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingDashboard.Error(), ErrInvalidPorts.Error())
	assert.Contains(t, ErrMissingDashboard.Error(), "dashboard")
}
