package connection

import (
	"context"
	"os"

	"recaptcharelay/services"

	recaptcha "cloud.google.com/go/recaptchaenterprise/v2/apiv1"
	"google.golang.org/api/option"
)

// RecaptchaOptions reads client options from the environment. Without
// RECAPTCHA_CREDENTIALS_FILE the client falls back to Application Default Credentials.
func RecaptchaOptions() []option.ClientOption {
	var opts []option.ClientOption
	if credentialsFile := os.Getenv("RECAPTCHA_CREDENTIALS_FILE"); credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	if endpoint := os.Getenv("RECAPTCHA_ENDPOINT"); endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	return opts
}

// RecaptchaConnection returns a factory that opens a new reCAPTCHA Enterprise
// client for every assessment.
func RecaptchaConnection(opts ...option.ClientOption) services.ClientFactory {
	return func(ctx context.Context) (services.AssessmentClient, error) {
		client, err := recaptcha.NewClient(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}
