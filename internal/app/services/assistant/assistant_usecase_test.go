package assistant

import (
	"context"
	"errors"
	"testing"

	"mycare-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChatClient struct {
	answer       string
	err          error
	calls        int
	lastLanguage string
}

func (f *fakeChatClient) Ask(ctx context.Context, message, language string) (string, error) {
	f.calls++
	f.lastLanguage = language
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func newAssistantFixture() (*assistantUsecase, *fakeChatClient) {
	chatClient := &fakeChatClient{answer: "model answer"}
	usecase := &assistantUsecase{
		ChatClient:       chatClient,
		LanguageDetector: NewHeuristicLanguageDetector(),
		Log:              zap.NewNop(),
	}
	return usecase, chatClient
}

func TestAssistantAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("FAQ match answers without calling the model", func(t *testing.T) {
		usecase, chatClient := newAssistantFixture()

		answer, err := usecase.Answer(ctx, &requests.ChatRequest{
			Message: "How much water should I drink daily?",
		})
		require.NoError(t, err)

		assert.Contains(t, answer.Answer, "2-3 liters")
		assert.Zero(t, chatClient.calls)
	})

	t.Run("keyword overlap catches rephrased questions", func(t *testing.T) {
		usecase, chatClient := newAssistantFixture()

		answer, err := usecase.Answer(ctx, &requests.ChatRequest{
			Message: "my kid has a fever, is a doctor needed?",
		})
		require.NoError(t, err)

		assert.Contains(t, answer.Answer, "39.4C")
		assert.Zero(t, chatClient.calls)
	})

	t.Run("unmatched question goes to the model", func(t *testing.T) {
		usecase, chatClient := newAssistantFixture()

		answer, err := usecase.Answer(ctx, &requests.ChatRequest{
			Message: "Tell me about migraines",
		})
		require.NoError(t, err)

		assert.Equal(t, "model answer", answer.Answer)
		assert.Equal(t, 1, chatClient.calls)
		assert.Equal(t, "en", chatClient.lastLanguage)
	})

	t.Run("explicit language wins over detection", func(t *testing.T) {
		usecase, chatClient := newAssistantFixture()

		_, err := usecase.Answer(ctx, &requests.ChatRequest{
			Message:  "Tell me about migraines",
			Language: "ta",
		})
		require.NoError(t, err)
		assert.Equal(t, "ta", chatClient.lastLanguage)
	})

	t.Run("language is detected when not given", func(t *testing.T) {
		usecase, chatClient := newAssistantFixture()

		_, err := usecase.Answer(ctx, &requests.ChatRequest{
			Message: "kepala saya pening sejak pagi",
		})
		require.NoError(t, err)
		assert.Equal(t, "ms", chatClient.lastLanguage)
	})

	t.Run("model failure propagates", func(t *testing.T) {
		usecase, chatClient := newAssistantFixture()
		chatClient.err = errors.New("model down")

		_, err := usecase.Answer(ctx, &requests.ChatRequest{
			Message: "Tell me about migraines",
		})
		require.Error(t, err)
	})
}

func TestDetectLanguage(t *testing.T) {
	detector := NewHeuristicLanguageDetector()

	tests := []struct {
		text     string
		expected string
	}{
		{"我头疼", "zh"},
		{"எனக்கு தலைவலி", "ta"},
		{"saya demam sejak semalam", "ms"},
		{"I have a headache", ""},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, detector.DetectLanguage(tc.text), tc.text)
	}
}

func TestMatchFAQ(t *testing.T) {
	t.Run("exact question matches", func(t *testing.T) {
		assert.NotEmpty(t, matchFAQ("How do I treat a minor cut?"))
	})

	t.Run("containment works both ways", func(t *testing.T) {
		assert.NotEmpty(t, matchFAQ("Please tell me: how do i treat a minor cut? It is bleeding."))
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, matchFAQ("why is the sky blue"))
	})
}
