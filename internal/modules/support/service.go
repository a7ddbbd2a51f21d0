package support

import (
	"context"
	"strings"
)

// QueryRequest is a free-text support question. Issue is consulted when
// Question is empty.
type QueryRequest struct {
	OrderID  string `json:"order_id,omitempty"`
	Question string `json:"question,omitempty"`
	Issue    string `json:"issue,omitempty"`
}

// Answer carries the responder's text and the document it came from.
type Answer struct {
	Text      string `json:"answer"`
	SourceDoc string `json:"source_doc"`
}

const trackingAnswer = "To track your order, go to Orders -> Select order -> Track. " +
	"Estimated delivery shown there."

const defaultAnswer = "Please provide your order id so we can look up delivery " +
	"status or returns instructions."

// Service defines the support query responder.
type Service interface {
	Answer(ctx context.Context, req QueryRequest) (*Answer, error)
}

type service struct{ returnsPolicy string }

// NewService creates a support responder over the given returns-policy text.
func NewService(returnsPolicy string) Service {
	return &service{returnsPolicy: returnsPolicy}
}

// Answer routes the question by keyword: returns and refunds get the policy
// document, tracking questions get the tracking FAQ, anything else gets the
// default prompt.
func (s *service) Answer(ctx context.Context, req QueryRequest) (*Answer, error) {
	q := req.Question
	if q == "" {
		q = req.Issue
	}
	q = strings.ToLower(q)

	switch {
	case strings.Contains(q, "return") || strings.Contains(q, "refund"):
		return &Answer{Text: s.returnsPolicy, SourceDoc: "returns_policy.txt"}, nil
	case strings.Contains(q, "track") || strings.Contains(q, "where"):
		return &Answer{Text: trackingAnswer, SourceDoc: "tracking_faq"}, nil
	default:
		return &Answer{Text: defaultAnswer, SourceDoc: "faq_default"}, nil
	}
}
