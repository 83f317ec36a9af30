package models

import "strings"

// Coalesce returns incoming when it was supplied, otherwise current.
func Coalesce[T any](incoming, current *T) *T {
	if incoming != nil {
		return incoming
	}
	return current
}

// ContainsFold reports whether s is set and contains substr, ignoring case.
func ContainsFold(s *string, substr string) bool {
	if s == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*s), strings.ToLower(substr))
}

// Contains reports whether s is set and contains substr.
func Contains(s *string, substr string) bool {
	return s != nil && strings.Contains(*s, substr)
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to i.
func IntPtr(i int) *int {
	return &i
}
