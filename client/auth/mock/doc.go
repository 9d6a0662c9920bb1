// Package mock provides an in-memory storefront backend served over
// httptest that facilitates testing the client side authorization flow and
// the cart state holder.
//
// The backend issues HS256 signed tokens, can invalidate issued access or
// refresh tokens on demand and counts calls per endpoint.
package mock
