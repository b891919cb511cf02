package sanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy

	inlinePolicyOnce sync.Once
	inlinePolicy     *bluemonday.Policy
)

// Plain strips every element and attribute from s, leaving text content
// only. Use it when a formatted message lands in an HTML page as plain text.
func Plain(s string) string {
	if s == "" {
		return ""
	}
	return plainSanitizer().Sanitize(s)
}

// Inline keeps a minimal inline-formatting allowlist (b, i, em, strong,
// code) and strips everything else. Use it when messages may carry light
// emphasis markup of their own.
func Inline(s string) string {
	if s == "" {
		return ""
	}
	return inlineSanitizer().Sanitize(s)
}

func plainSanitizer() *bluemonday.Policy {
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return plainPolicy
}

func inlineSanitizer() *bluemonday.Policy {
	inlinePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "em", "strong", "code")
		inlinePolicy = policy
	})
	return inlinePolicy
}
