package services

import (
	"testing"

	"college-backend/data"
	"college-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatbot() *ChatbotService {
	return NewChatbotService(data.NewKnowledgeBase())
}

func TestReply_EmptyMessage(t *testing.T) {
	bot := newTestChatbot()
	_, err := bot.Reply("   ")
	assert.ErrorIs(t, err, models.ErrMissingField)
}

func TestReply_Greeting(t *testing.T) {
	bot := newTestChatbot()
	kb := data.NewKnowledgeBase()

	reply, err := bot.Reply("Hello!")
	require.NoError(t, err)
	assert.Contains(t, kb.Greetings.Responses, reply)
}

func TestReply_Thanks(t *testing.T) {
	bot := newTestChatbot()
	kb := data.NewKnowledgeBase()

	reply, err := bot.Reply("thank you so much")
	require.NoError(t, err)
	assert.Contains(t, kb.Thanks.Responses, reply)
}

func TestReply_TopicGeneral(t *testing.T) {
	bot := newTestChatbot()

	reply, err := bot.Reply("Tell me about ADMISSION dates")
	require.NoError(t, err)
	assert.Contains(t, reply, "June 1st")
}

func TestReply_SubtopicBeatsGeneral(t *testing.T) {
	bot := newTestChatbot()

	reply, err := bot.Reply("what documents do I need for admission?")
	require.NoError(t, err)
	assert.Contains(t, reply, "mark sheets")

	reply, err = bot.Reply("is there any scholarship for fees?")
	require.NoError(t, err)
	assert.Contains(t, reply, "Merit scholarships")

	reply, err = bot.Reply("when are exam results announced")
	require.NoError(t, err)
	assert.Contains(t, reply, "Marks dashboard")
}

func TestReply_Fallback(t *testing.T) {
	bot := newTestChatbot()
	kb := data.NewKnowledgeBase()

	reply, err := bot.Reply("tell me a joke")
	require.NoError(t, err)
	assert.Equal(t, kb.Fallback, reply)
}

func TestChatbotStats(t *testing.T) {
	bot := newTestChatbot()
	stats := bot.Stats()

	assert.Equal(t, 8, stats["topicCount"])
	topics, ok := stats["topics"].([]string)
	require.True(t, ok)
	assert.Contains(t, topics, "admissions")
	assert.Contains(t, topics, "placements")
	assert.Greater(t, stats["patternCount"].(int), 0)
}
