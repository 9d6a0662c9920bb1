package cli

import "github.com/viant/storefront"

// Options defines global flags and commands
type Options struct {
	Config string `short:"c" long:"config" description:"client options YAML URL"`
	storefront.ClientOptions

	Login    LoginCommand    `command:"login" description:"log in and store the token pair"`
	Register RegisterCommand `command:"register" description:"create an account"`
	Logout   EmptyCommand    `command:"logout" description:"clear stored tokens"`
	Session  EmptyCommand    `command:"session" description:"show session state"`
	Products EmptyCommand    `command:"products" description:"list products"`
	Product  IDCommand       `command:"product" description:"show a product"`
	Cart     CartCommand     `command:"cart" description:"show the cart"`
	Add      ItemCommand     `command:"add" description:"add a product to the cart"`
	Update   ItemCommand     `command:"update" description:"set quantity of a cart item"`
	Remove   IDCommand       `command:"remove" description:"remove a cart item"`
	Orders   EmptyCommand    `command:"orders" description:"list orders"`
	Order    IDCommand       `command:"order" description:"show an order"`
	Checkout EmptyCommand    `command:"checkout" description:"create an order from the cart"`
}

type EmptyCommand struct{}

type LoginCommand struct {
	Username string `short:"n" long:"username" description:"account username"`
	Password string `short:"p" long:"password" description:"account password"`
	Secret   string `short:"s" long:"secret" description:"scy secret URL with username and password"`
	Key      string `short:"k" long:"key" description:"secret encryption key" default:"blowfish://default"`
}

type RegisterCommand struct {
	Username string `short:"n" long:"username" description:"account username" required:"true"`
	Password string `short:"p" long:"password" description:"account password, at least 8 characters" required:"true"`
	Email    string `short:"e" long:"email" description:"account email"`
}

type IDCommand struct {
	ID string `short:"i" long:"id" description:"resource id" required:"true"`
}

type ItemCommand struct {
	ProductID string `short:"i" long:"id" description:"product id" required:"true"`
	Quantity  int    `short:"q" long:"quantity" description:"quantity" default:"1"`
}

type CartCommand struct {
	Summary bool `short:"s" long:"summary" description:"join items with product details"`
}
