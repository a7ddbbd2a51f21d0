package support

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPolicy = "Items can be returned within 15 days."

func TestAnswer_ReturnsQuestion(t *testing.T) {
	svc := NewService(testPolicy)

	answer, err := svc.Answer(context.Background(), QueryRequest{Question: "How do I RETURN this?"})
	require.NoError(t, err)
	assert.Equal(t, testPolicy, answer.Text)
	assert.Equal(t, "returns_policy.txt", answer.SourceDoc)
}

func TestAnswer_RefundKeyword(t *testing.T) {
	svc := NewService(testPolicy)

	answer, err := svc.Answer(context.Background(), QueryRequest{Question: "I want a refund"})
	require.NoError(t, err)
	assert.Equal(t, "returns_policy.txt", answer.SourceDoc)
}

func TestAnswer_TrackingQuestion(t *testing.T) {
	svc := NewService(testPolicy)

	answer, err := svc.Answer(context.Background(), QueryRequest{Question: "Where is my order?"})
	require.NoError(t, err)
	assert.Equal(t, "tracking_faq", answer.SourceDoc)
}

func TestAnswer_IssueFieldFallsBackWhenQuestionEmpty(t *testing.T) {
	svc := NewService(testPolicy)

	answer, err := svc.Answer(context.Background(), QueryRequest{Issue: "track my package"})
	require.NoError(t, err)
	assert.Equal(t, "tracking_faq", answer.SourceDoc)
}

func TestAnswer_Default(t *testing.T) {
	svc := NewService(testPolicy)

	answer, err := svc.Answer(context.Background(), QueryRequest{Question: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "faq_default", answer.SourceDoc)
	assert.Contains(t, answer.Text, "order id")
}
