package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFAQ_DerivedStatus(t *testing.T) {
	f, err := NewFAQ(nil, "Do you deliver after 10pm?")
	require.NoError(t, err)
	assert.Equal(t, FAQPending, f.Status())

	require.NoError(t, f.Respond("Yes, until 11pm on weekends."))
	assert.Equal(t, FAQAnswered, f.Status())

	f.ClearAnswer()
	assert.Equal(t, FAQPending, f.Status())
}

func TestFAQ_WhitespaceAnswerStaysPending(t *testing.T) {
	f, err := NewFAQ(nil, "Question?")
	require.NoError(t, err)

	assert.Error(t, f.Respond("   "))
	assert.Equal(t, FAQPending, f.Status())
}

func TestFAQ_PublishRequiresAnswer(t *testing.T) {
	f, err := NewFAQ(nil, "Question?")
	require.NoError(t, err)

	assert.Error(t, f.SetPublished(true))
	require.NoError(t, f.Respond("Answer."))
	require.NoError(t, f.SetPublished(true))
	assert.True(t, f.Published)

	f.ClearAnswer()
	assert.False(t, f.Published, "clearing the answer unpublishes the question")
}

func TestNewFAQ_EmptyQuestion(t *testing.T) {
	_, err := NewFAQ(nil, "  ")
	assert.Error(t, err)
}
