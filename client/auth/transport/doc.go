// Package transport implements an http.RoundTripper that injects the stored
// bearer token into outgoing storefront requests and, when the backend
// answers `401 Unauthorized`, exchanges the refresh token for a new access
// token and replays the request once.
//
// A failed refresh clears the token store and is reported to registered
// listeners as a SessionExpired event; the caller still receives the original
// 401 response. Concurrent refreshes sharing a refresh token are coalesced.
package transport
