package shopify

import (
	"errors"
	"strings"
)

var (
	// ErrTransport covers network failures, non-2xx responses and
	// top-level GraphQL errors.
	ErrTransport = errors.New("shopify: request failed")
	// ErrMalformedResponse is returned when a response does not match the
	// expected shape.
	ErrMalformedResponse = errors.New("shopify: malformed response")
	// ErrRemoteValidation matches *UserErrors.
	ErrRemoteValidation = errors.New("shopify: rejected by remote validation")
)

// GraphQLError is one entry of the top-level "errors" array.
type GraphQLError struct {
	Message string `json:"message"`
}

// GraphQLErrors is returned when the API answers with a top-level error list.
type GraphQLErrors []GraphQLError

func (e GraphQLErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ge := range e {
		msgs = append(msgs, ge.Message)
	}
	return "shopify: graphql errors: " + strings.Join(msgs, "; ")
}

func (e GraphQLErrors) Is(target error) bool {
	return target == ErrTransport
}

// UserError is a structured (field, message) mutation error.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
}

// CodeAlreadyCompleted is reported for mutations on a paid checkout.
const CodeAlreadyCompleted = "ALREADY_COMPLETED"

// UserErrors is returned when a mutation reports a non-empty userErrors list,
// even though the transport call succeeded.
type UserErrors []UserError

func (e UserErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, ue := range e {
		if len(ue.Field) > 0 {
			parts = append(parts, strings.Join(ue.Field, ".")+": "+ue.Message)
			continue
		}
		parts = append(parts, ue.Message)
	}
	return "shopify: user errors: " + strings.Join(parts, "; ")
}

func (e UserErrors) Is(target error) bool {
	return target == ErrRemoteValidation
}

// CheckoutGone reports whether err says the checkout can no longer be
// changed, because it was completed or no longer exists.
func CheckoutGone(err error) bool {
	var userErrs UserErrors
	if !errors.As(err, &userErrs) {
		return false
	}
	for _, ue := range userErrs {
		if ue.Code == CodeAlreadyCompleted {
			return true
		}
		if len(ue.Field) > 0 && ue.Field[0] == "checkoutId" {
			return true
		}
	}
	return false
}
