// Package client implements a Go client for the storefront REST backend.
//
// It provides strongly typed calls for the auth, catalog, cart and order
// endpoints on top of an http.Client whose transport injects the bearer token
// and transparently refreshes it once when the backend answers 401.
//
// Example:
//
//	cli, _ := client.New("https://shop.example.com")
//	_, _ = cli.Login(ctx, &schema.Credentials{Username: "alice", Password: "secret"})
//	products, _ := cli.Products(ctx)
//	fmt.Println(products)
package client
