package services

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"alfredoptarigan/ats-scorer/internal/models"
)

// DefaultCompletionTimeout bounds one completion call when no timeout is configured.
const DefaultCompletionTimeout = 120 * time.Second

// ChatRequest is one system + user exchange that must be answered with a JSON object.
type ChatRequest struct {
	SystemMessage string
	UserMessage   string
	Timeout       time.Duration
}

// ChatProvider sends a ChatRequest to a remote model and returns the text of
// the first choice.
type ChatProvider interface {
	Name() string
	Chat(ctx context.Context, req ChatRequest) (string, error)
}

// StatusError is returned by providers when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return http.StatusText(e.StatusCode) + ": " + e.Body
}

type CompletionService interface {
	Complete(ctx context.Context, prompt, systemMessage string, timeout time.Duration) models.CallOutcome
}

type completionService struct {
	provider ChatProvider
	notifier StatusNotifier
}

func NewCompletionService(provider ChatProvider, notifier StatusNotifier) CompletionService {
	if notifier == nil {
		notifier = NewLogNotifier()
	}
	return &completionService{
		provider: provider,
		notifier: notifier,
	}
}

// Complete issues exactly one call. Failures are classified and never retried.
func (s *completionService) Complete(ctx context.Context, prompt, systemMessage string, timeout time.Duration) models.CallOutcome {
	if timeout <= 0 {
		timeout = DefaultCompletionTimeout
	}

	s.notifier.Notify(StatusInfo, "Calculating Score, Please wait...")

	text, err := s.provider.Chat(ctx, ChatRequest{
		SystemMessage: systemMessage,
		UserMessage:   prompt,
		Timeout:       timeout,
	})
	if err != nil {
		kind := ClassifyError(err)
		s.notifier.Notify(StatusFailure, "Error: "+err.Error())
		return models.FailureOutcome(kind, err.Error())
	}

	s.notifier.Notify(StatusSuccess, "Analysis completed successfully!")
	return models.SuccessOutcome(text)
}

var (
	authenticationKeywords = []string{"api_key", "authentication", "unauthorized"}
	timeoutKeywords        = []string{"timeout", "deadline"}
	connectivityKeywords   = []string{"connection", "network"}
)

// ClassifyError maps a provider error to an ErrorKind. Structured errors are
// inspected first; the lowercased message is matched against keywords only
// when nothing structured applies.
func ClassifyError(err error) models.ErrorKind {
	if err == nil {
		return models.KindUnknown
	}
	if kind, ok := classifyStructured(err); ok {
		return kind
	}
	return ClassifyMessage(err.Error())
}

// ClassifyMessage classifies an opaque failure description.
func ClassifyMessage(message string) models.ErrorKind {
	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, authenticationKeywords):
		return models.KindAuthentication
	case containsAny(lower, timeoutKeywords):
		return models.KindTimeout
	case containsAny(lower, connectivityKeywords):
		return models.KindConnectivity
	default:
		return models.KindUnknown
	}
}

func classifyStructured(err error) (models.ErrorKind, bool) {
	if errors.Is(err, context.DeadlineExceeded) {
		return models.KindTimeout, true
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return classifyStatus(statusErr.StatusCode)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyAPIError(apiErr)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return classifyAPIError(*apiErrPtr)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return models.KindTimeout, true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return models.KindConnectivity, true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return models.KindConnectivity, true
	}

	return "", false
}

func classifyAPIError(apiErr genai.APIError) (models.ErrorKind, bool) {
	switch apiErr.Status {
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return models.KindAuthentication, true
	case "DEADLINE_EXCEEDED":
		return models.KindTimeout, true
	case "UNAVAILABLE":
		return models.KindConnectivity, true
	}
	return classifyStatus(apiErr.Code)
}

func classifyStatus(code int) (models.ErrorKind, bool) {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.KindAuthentication, true
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return models.KindTimeout, true
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return models.KindConnectivity, true
	}
	return "", false
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
