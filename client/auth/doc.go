// Package auth contains helpers describing the client side session.
//
// Tokens issued by the storefront backend are JWTs carrying `user_id` and
// `exp` claims. Inspect decodes them without verification (the client does not
// hold the signing secret) so callers can show who is logged in and when the
// access token lapses. Token refresh itself is handled by the `transport`
// sub-package; tokens are persisted by the `store` sub-package.
package auth
