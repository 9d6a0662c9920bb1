package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/storefront/schema"
)

// Run parses args and executes the selected command
func Run(args []string) error {
	return New(os.Stdout, nil).Run(context.Background(), args)
}

func (s *Service) Run(ctx context.Context, args []string) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}
	if parser.Active == nil {
		return fmt.Errorf("command is required")
	}
	if err = s.init(ctx, options); err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	switch parser.Active.Name {
	case "login":
		return s.login(ctx, &options.Login)
	case "register":
		return s.register(ctx, &options.Register)
	case "logout":
		if err = s.client.Logout(ctx); err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.output, "logged out")
		return err
	case "session":
		session, err := s.client.Session(ctx)
		if err != nil {
			return err
		}
		return s.print(session)
	case "products":
		products, err := s.client.Products(ctx)
		if err != nil {
			return err
		}
		return s.print(products)
	case "product":
		product, err := s.client.Product(ctx, schema.ID(options.Product.ID))
		if err != nil {
			return err
		}
		return s.print(product)
	case "cart":
		return s.showCart(ctx, &options.Cart)
	case "add":
		if err = s.cart.AddItem(ctx, schema.ID(options.Add.ProductID), options.Add.Quantity); err != nil {
			return err
		}
		return s.print(s.cart.State().Items)
	case "update":
		if err = s.cart.UpdateItem(ctx, schema.ID(options.Update.ProductID), options.Update.Quantity); err != nil {
			return err
		}
		return s.print(s.cart.State().Items)
	case "remove":
		if err = s.cart.RemoveItem(ctx, schema.ID(options.Remove.ID)); err != nil {
			return err
		}
		return s.print(s.cart.State().Items)
	case "orders":
		orders, err := s.client.Orders(ctx)
		if err != nil {
			return err
		}
		return s.print(orders)
	case "order":
		order, err := s.client.Order(ctx, schema.ID(options.Order.ID))
		if err != nil {
			return err
		}
		return s.print(order)
	case "checkout":
		order, err := s.client.CreateOrder(ctx)
		if err != nil {
			return err
		}
		return s.print(order)
	}
	return fmt.Errorf("unsupported command: %v", parser.Active.Name)
}
