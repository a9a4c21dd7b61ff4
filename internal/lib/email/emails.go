package email

import "context"

// SendWelcomeEmail greets a traveler who just registered.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, username string) error {
	return c.SendEmail(ctx, to, "Welcome to Travelog!", TemplateWelcome, map[string]string{
		"Username": username,
	})
}
