package respond

import "regexp"

var (
	// userinfo in URLs, e.g. a summarizer endpoint configured with credentials
	urlCredentialsPattern = regexp.MustCompile(`://([^:/@\s]+):([^@/\s]+)@`)
	// token-like query parameters
	secretQueryPattern = regexp.MustCompile(`(?i)([?&](?:token|key|api_key|apikey|secret|password)=)[^&\s"]+`)
	bearerPattern      = regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9._~+/=-]+`)
)

// SanitizeError returns err's message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = urlCredentialsPattern.ReplaceAllString(msg, "://$1:****@")
	msg = secretQueryPattern.ReplaceAllString(msg, "${1}****")
	msg = bearerPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
