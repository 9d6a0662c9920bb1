package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/viant/scy"
	"github.com/viant/scy/cred"
	"github.com/viant/storefront"
	"github.com/viant/storefront/client"
	"github.com/viant/storefront/client/auth/transport"
	"github.com/viant/storefront/client/cart"
	"github.com/viant/storefront/schema"
	"go.uber.org/zap"
)

// Service executes storefront commands
type Service struct {
	output io.Writer
	logger *zap.Logger
	client *client.Client
	cart   *cart.Holder
}

func (s *Service) init(ctx context.Context, options *Options) error {
	clientOptions, err := clientOptions(ctx, options)
	if err != nil {
		return err
	}
	if s.logger != nil {
		clientOptions.Logger = s.logger
	}
	if s.logger, err = clientOptions.NewLogger(); err != nil {
		return err
	}
	clientOptions.Logger = s.logger
	clientOptions.Listener = s.onSessionEvent
	if s.client, err = storefront.NewClient(ctx, clientOptions); err != nil {
		return err
	}
	s.cart = cart.New(s.client, cart.WithLogger(s.logger.Named("cart")))
	return nil
}

// clientOptions merges the config file, if any, with flags; flags win over
// environment variables, which win over the file. go-flags reads the
// environment into flags that were not given.
func clientOptions(ctx context.Context, options *Options) (*storefront.ClientOptions, error) {
	ret := &options.ClientOptions
	if options.Config != "" {
		loaded, err := storefront.LoadOptions(ctx, options.Config)
		if err != nil {
			return nil, err
		}
		if ret.URL != "" {
			loaded.URL = ret.URL
		}
		if ret.Tokens != "" {
			loaded.Tokens = ret.Tokens
		}
		loaded.Verbose = loaded.Verbose || ret.Verbose
		loaded.Tracing = loaded.Tracing || ret.Tracing
		ret = loaded
	}
	if ret.Tokens == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate token file: %w", err)
		}
		ret.Tokens = filepath.Join(home, ".storefront", "tokens.json")
	}
	return ret, nil
}

func (s *Service) onSessionEvent(_ context.Context, event *transport.Event) {
	if event.Type == transport.SessionExpired {
		_, _ = fmt.Fprintln(s.output, "session expired, please log in again")
	}
}

func (s *Service) login(ctx context.Context, command *LoginCommand) error {
	credentials := &schema.Credentials{Username: command.Username, Password: command.Password}
	if command.Secret != "" {
		basic, err := loadSecret(ctx, command.Secret, command.Key)
		if err != nil {
			return err
		}
		credentials.Username, credentials.Password = basic.Username, basic.Password
	}
	if credentials.Username == "" || credentials.Password == "" {
		return fmt.Errorf("username and password are required")
	}
	if _, err := s.client.Login(ctx, credentials); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.output, "logged in as %v\n", credentials.Username)
	return err
}

func loadSecret(ctx context.Context, URL, key string) (*cred.Basic, error) {
	secrets := scy.New()
	secret, err := secrets.Load(ctx, scy.NewResource(&cred.Basic{}, URL, key))
	if err != nil {
		return nil, fmt.Errorf("failed to load secret %v: %w", URL, err)
	}
	basic, ok := secret.Target.(*cred.Basic)
	if !ok {
		return nil, fmt.Errorf("unexpected secret type: %T", secret.Target)
	}
	return basic, nil
}

func (s *Service) register(ctx context.Context, command *RegisterCommand) error {
	response, err := s.client.Register(ctx, &schema.Registration{Username: command.Username, Password: command.Password, Email: command.Email})
	if err != nil {
		return err
	}
	return s.print(response)
}

func (s *Service) showCart(ctx context.Context, command *CartCommand) error {
	if err := s.cart.Fetch(ctx); err != nil {
		return err
	}
	state := s.cart.State()
	if !command.Summary {
		return s.print(state.Items)
	}
	summary, err := cart.Summarize(ctx, s.client, state.Items, s.logger)
	if err != nil {
		return err
	}
	return s.print(summary)
}

func (s *Service) print(value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.output, string(data))
	return err
}

// New creates a service writing results to output
func New(output io.Writer, logger *zap.Logger) *Service {
	return &Service{output: output, logger: logger}
}
