package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContentIsValid(t *testing.T) {
	content, err := DefaultContent()
	require.NoError(t, err)

	assert.Equal(t, "masterpieces.", content.Hero.HeadlineHighlight)
	require.NotNil(t, content.About)
	assert.Len(t, content.Services, 6)
	assert.Len(t, content.Stats, 4)
	assert.Equal(t, "deep@makebetter.tech", content.ContactEmail)
}
