package cmd

import (
	"intervo/internal/adapters/api"
	"intervo/internal/config"
	"intervo/internal/logging"
	"intervo/internal/ports"
	"intervo/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Roles     []string
	ServerURL string
	Token     string
}

// NewContainer creates a new Container with defaults resolved from settings
func NewContainer(settings *config.Settings) (*Container, error) {
	c := &Container{
		Roles:     config.DefaultRoles,
		ServerURL: config.DefaultServerURL,
	}
	if settings != nil {
		if settings.ServerURL != "" {
			c.ServerURL = settings.ServerURL
		}
		c.Token = settings.Token
		if len(settings.Roles) > 0 {
			c.Roles = settings.Roles
		}
	}
	return c, nil
}

// NewService creates a client for the remote interview service. Flag values
// override the container defaults when non-empty.
func (c *Container) NewService(serverURL, token string) ports.InterviewService {
	if serverURL == "" {
		serverURL = c.ServerURL
	}
	if token == "" {
		token = c.Token
	}
	return api.NewClient(serverURL, token, nil, logging.Logger)
}

// NewController creates a fresh controller wired to the remote service
func (c *Container) NewController(serverURL, token string) *services.InterviewController {
	return services.NewInterviewController(c.NewService(serverURL, token), logging.Logger)
}
