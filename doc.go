// Package storefront wires a storefront REST client from configuration.
//
// The package glues the building blocks under client/ together: a token store
// (memory, file or redis), the authenticated transport that injects bearer
// tokens and refreshes them once on 401, optional OpenTelemetry tracing, and
// structured logging. Options can be populated from CLI flags or a YAML file
// located on any viant/afs supported storage.
//
// Example:
//
//	options, _ := storefront.LoadOptions(ctx, "~/.storefront/config.yaml")
//	cli, _ := storefront.NewClient(ctx, options)
//	_, _ = cli.Login(ctx, &schema.Credentials{Username: "alice", Password: "secret"})
//	items, _ := cli.Cart(ctx)
package storefront
