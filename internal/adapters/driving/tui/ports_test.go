package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorts_Validate(t *testing.T) {
	assert.NoError(t, (&Ports{Search: &MockSearchService{}}).Validate())
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingSearchService)

	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrMissingSearchService)
}
