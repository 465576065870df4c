package services

import (
	"math/rand"
	"strings"

	"college-backend/data"
	"college-backend/models"
)

// ChatbotService answers portal questions by pattern-matching against a
// static knowledge base. No state is kept between messages.
type ChatbotService struct {
	kb *data.KnowledgeBase
}

func NewChatbotService(kb *data.KnowledgeBase) *ChatbotService {
	return &ChatbotService{kb: kb}
}

// Reply produces a response for one user message.
func (s *ChatbotService) Reply(message string) (string, error) {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return "", models.ErrMissingField
	}

	if matchesAny(msg, s.kb.Greetings.Patterns) {
		return pick(s.kb.Greetings.Responses), nil
	}
	if matchesAny(msg, s.kb.Thanks.Patterns) {
		return pick(s.kb.Thanks.Responses), nil
	}
	if matchesAny(msg, s.kb.Goodbye.Patterns) {
		return pick(s.kb.Goodbye.Responses), nil
	}

	for _, topic := range s.kb.Topics {
		if !matchesAny(msg, topic.Patterns) {
			continue
		}
		for _, sub := range topic.Subtopics {
			if matchesAny(msg, sub.Keywords) {
				return sub.Response, nil
			}
		}
		return topic.General, nil
	}

	return s.kb.Fallback, nil
}

// Stats describes what the bot can talk about, for the admin dashboard.
func (s *ChatbotService) Stats() map[string]any {
	topics := make([]string, 0, len(s.kb.Topics))
	patternCount := 0
	for _, t := range s.kb.Topics {
		topics = append(topics, t.Name)
		patternCount += len(t.Patterns)
	}
	return map[string]any{
		"topics":       topics,
		"topicCount":   len(topics),
		"patternCount": patternCount,
	}
}

func matchesAny(msg string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

func pick(responses []string) string {
	if len(responses) == 1 {
		return responses[0]
	}
	return responses[rand.Intn(len(responses))]
}
