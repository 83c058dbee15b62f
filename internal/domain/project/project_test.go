package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectType_Valid(t *testing.T) {
	for _, pt := range Types {
		assert.True(t, pt.Valid(), string(pt))
	}
	assert.False(t, ProjectType("mobile").Valid())
	assert.False(t, ProjectType("").Valid())
}

func TestProject_Validate(t *testing.T) {
	assert.NoError(t, (&Project{Type: TypeAI}).Validate())
	assert.ErrorIs(t, (&Project{Type: "desktop"}).Validate(), ErrInvalidType)
}
